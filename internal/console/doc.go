// Package console composes the shell: session gating, tab selection,
// mount-once panel loading, and the single-slot transient notice.
//
// The shell renders the workspace only while the session is
// authenticated. Each tab's panel loads when first selected and then
// keeps its collection until an explicit refresh or a mutation reload;
// switching between already-mounted tabs issues no network traffic.
// Logout unmounts everything so the next login starts fresh.
package console
