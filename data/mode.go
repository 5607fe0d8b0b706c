package data

// AccessMode represents file access modes for opening files. Modes can be
// combined using bitwise OR.
type AccessMode int

const (
	AccessRead AccessMode = 1 << iota
	AccessWrite
	AccessAppend
	AccessCreate
	AccessTrunc
)

// IsReadOnly checks if the mode only allows reading.
func (m AccessMode) IsReadOnly() bool {
	return m&AccessRead != 0 && m&AccessWrite == 0
}

// HasWrite checks if the mode requests any write access.
func (m AccessMode) HasWrite() bool {
	return m&(AccessWrite|AccessAppend|AccessCreate|AccessTrunc) != 0
}
