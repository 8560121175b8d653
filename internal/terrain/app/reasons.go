package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 技术错误 reason（服务内枚举），用于日志与排障。
	ReasonStoreLoadFail   = NewReason("TERRAIN_STORE_LOAD_FAIL", "地图读取失败")
	ReasonStoreSaveFail   = NewReason("TERRAIN_STORE_SAVE_FAIL", "地图写入失败")
	ReasonStoreListFail   = NewReason("TERRAIN_STORE_LIST_FAIL", "地图列表读取失败")
	ReasonStoreDeleteFail = NewReason("TERRAIN_STORE_DELETE_FAIL", "地图删除失败")
)
