// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: Rejects requests whose X-API-Key header does not match the
//     configured key. An empty key disables the check.
//   - rayid: Tags every request with a UUID ray id, stored in the "ray_id"
//     local for logger.WithRayID and echoed in the X-Ray-ID response header.
//     A valid id sent by the client is kept.
//
// Both are registered globally by the serve command; the swagger route is
// mounted before auth and stays public.
package middleware
