package dto

// 请求体。坐标允许为 0，所以不给 binding 校验，越界交给领域层判断。

type CreateMapReq struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type CloseMapReq struct {
	Force bool `json:"force"`
}

type RenameMapReq struct {
	Name string `json:"name"`
}

type ResizeMapReq struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type SetTileReq struct {
	Terrain string `json:"terrain"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

type AddUnitReq struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Faction     string `json:"faction"`
	BattleClass string `json:"battleClass"`
}

// 响应体。

type ChangedResp struct {
	Changed bool `json:"changed"`
}

type AddedResp struct {
	Added bool `json:"added"`
}

type RemovedResp struct {
	Removed bool `json:"removed"`
}

type TileResp struct {
	Terrain string `json:"terrain"`
}
