package ports

// Location is the address the board publishes into. ReplaceQuery must not add
// a history entry.
type Location interface {
	Query(key string) (string, bool)
	ReplaceQuery(key, value string) error
	String() string
}
