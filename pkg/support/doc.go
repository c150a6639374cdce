// Package support forwards the app's support form to the email provider.
//
// Submissions are validated with go-playground/validator: both fields are
// required after trimming and the sender must match a basic address
// pattern (the "supportemail" rule). With no provider key the submission is
// accepted as a mock; otherwise one email is sent to the configured support
// address, with the sender as reply-to.
package support
