// Package security groups the gateway's access control. Subpackage auth
// holds the bearer token guard applied to every proxied route.
package security
