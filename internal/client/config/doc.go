// Package config loads runtime configuration for the LawLink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. LAWLINK_* environment variables, with a .env file loaded first.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-i int      chat poll interval (seconds)
//	-d string   local database path
//	-l string   log file path
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "poll_interval": "2s",
//	  "request_timeout": "10s",
//	  "database_path": "lawlink.db",
//	  "log_format": "zap",
//	  "websocket": true,
//	  "upload_mode": "s3",
//	  "s3_bucket": "documents",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/"
//	}
package config
