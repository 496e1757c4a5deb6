// Package chat is the messaging view-model shared by the client chat screen
// and the lawyer communication portal.
//
// A ViewModel holds the conversation list, the selected conversation's
// message log and the compose field. Sends are optimistic: the message is
// shown as pending at once and either confirmed or rolled back when the
// server answers. Fresh messages arrive through a Subscriber, which is a
// fixed-interval Poller or a WebSocketSubscriber that falls back to polling.
//
// Reconciliation rules between snapshots and local messages:
//
//   - a full snapshot replaces the server log;
//   - pending messages are kept on top of every snapshot until the send
//     resolves;
//   - a confirmed message is kept until a snapshot contains its server id or
//     a snapshot fetched after the confirmation arrives;
//   - updates for a conversation that is no longer selected are dropped.
package chat
