// Package graphml implements the collaborator interfaces of spec §6: a
// GraphML-like reader/writer for the constraint graph (stdlib
// encoding/xml) and a YAML status side-channel (gopkg.in/yaml.v3) for
// status.CheckStatus. Neither the parser nor the status renderer perform
// any DC-checking logic of their own; they only translate between the
// wire schema of §6 and the in-memory graph.Graph/status.CheckStatus
// types the CORE operates on.
package graphml
