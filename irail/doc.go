// Package irail is a rate-limited HTTP client for the public iRail API
// (https://api.irail.be/v1), which serves Belgian railway data as JSON.
//
// All outbound requests share a single limiter capped at the rate the
// iRail usage policy allows. Failures are reported as *Error values
// classified by Kind so callers can map them to tool-level results.
package irail
