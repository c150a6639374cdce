// Package resend is the client for the Resend transactional email API.
package resend
