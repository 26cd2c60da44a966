// Package auth provides header-construction policies for outgoing requests.
//
// The transport layer treats authentication as an injected concern: a
// Provider decorates each request before it is sent, keeping credential
// handling out of the request pipeline itself.
package auth
