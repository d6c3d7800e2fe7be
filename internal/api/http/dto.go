package http

// CreateRoomRequest is the payload for POST /rooms. Omitted fields use the
// server configuration. A given seed is used as is, 0 included.
type CreateRoomRequest struct {
	GridSize  *int   `json:"grid_size"`
	DarkCells *int   `json:"dark_cells"`
	Seed      *int64 `json:"seed"`
}

// CellRequest names one cell for select, move and click.
type CellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// PointerRequest is a click in renderer pixels on a board drawn with
// square cells of CellSize pixels.
type PointerRequest struct {
	X        *int `json:"x" binding:"required"`
	Y        *int `json:"y" binding:"required"`
	CellSize int  `json:"cell_size" binding:"required,min=1"`
}

// CellQuery is the query string of GET /rooms/:code/cell.
type CellQuery struct {
	Row *int `form:"row" binding:"required"`
	Col *int `form:"col" binding:"required"`
}
