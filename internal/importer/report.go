package importer

// Skipped - кортеж, который не удалось вставить.
type Skipped struct {
	Line int
	ID   string
	Err  error
}

// SchemaFailure - DDL-строка, которую не удалось выполнить.
type SchemaFailure struct {
	Line      int
	Statement string
	Err       error
}

// Report собирает результат импорта по каждому оператору, чтобы вызывающий
// код мог посмотреть, что было пропущено.
type Report struct {
	Lines          int
	SchemaApplied  int
	SchemaFailures []SchemaFailure
	Tuples         int
	Inserted       int
	Skipped        []Skipped
	Batches        int
	// RowCount - число строк в целевой таблице после импорта, -1 если подсчитать не удалось.
	RowCount int
	CountErr error
}
