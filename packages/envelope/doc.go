// Package envelope inspects the outer JSON structure returned by
// envelope-style APIs: the payload of interest lives under a "data" field
// and failure bodies may carry a numeric "ErrorCode".
package envelope
