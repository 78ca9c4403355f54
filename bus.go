package opt300x

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// AddressableWriterReader performs a write followed by a read within a
// single bus transaction (repeated start on buses that support it).
// Register reads rely on it: a stop condition between the pointer write
// and the data read would reset the device's register pointer.
type AddressableWriterReader interface {
	WriteReadToAddr(ctx context.Context, address byte, out, in []byte) error
}

type I2CBus interface {
	AddressableReader
	AddressableWriter
	AddressableWriterReader
}
