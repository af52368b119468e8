package csvdb

// insertBuff holds rows until the writer flushes them to disk.
type insertBuff struct {
	rows   [][]string
	size   int
	isFull bool
}

func newInsertBuffer(bufferSize int) *insertBuff {
	b := new(insertBuff)
	b.size = bufferSize
	if b.size <= 0 {
		b.size = cDefaultBuffSize
	}
	b.init()
	return b
}

func (b *insertBuff) init() {
	b.rows = make([][]string, 0, b.size)
	b.isFull = false
}

func (b *insertBuff) register(row []string) bool {
	b.rows = append(b.rows, row)
	b.isFull = len(b.rows) >= b.size
	return b.isFull
}

func (b *insertBuff) len() int {
	return len(b.rows)
}
