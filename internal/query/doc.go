// Package query builds data-service requests from dataset configuration.
//
// A Builder binds one configured dataset and produces Requests: the URL
// path comes from filling the dataset's template, non-string filler values
// divert to a side channel and join the request payload, and the payload
// itself is serialized as canonical JSON (sorted keys, NFC strings, no HTML
// escaping) so equal queries always produce byte-identical bodies. Requests
// carry a time-sortable UUIDv7 token and a sequence number from a logical
// clock; both are injectable for deterministic tests.
//
// Building never performs I/O. Issuing the request is the caller's concern.
package query
