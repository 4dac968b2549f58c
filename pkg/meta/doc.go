// Package meta describes the host storage the proper name field reads from
// and writes to: values keyed by object id and field key. MemoryStore is the
// in-process implementation used by tests and the CLI; sqlstore adapts host
// meta tables reachable through database/sql.
package meta
