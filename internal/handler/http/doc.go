// Package http implements the HTML front-end of the user administration
// application.
//
// It exposes route wiring, server-rendered views, and middleware. Cross-cutting
// concerns such as request tracing, access logging, request metrics, and the
// 404-instead-of-405 policy are handled in this package before requests are
// delegated to the service layer. One-time notifications travel between a
// redirect and the next render through a [flash.Store].
package http
