package sqlitedb

type Post struct {
	ID     int64
	Title  string
	Name   string
	Status string
}

type PostWithMeta struct {
	ID            int64
	Title         string
	Status        string
	FileUrl       string
	ZippingStatus string
}
