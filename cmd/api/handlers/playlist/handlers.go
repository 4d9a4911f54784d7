package playlist

type CreatePlaylistParam struct {
	Name        string `form:"name" json:"name" vd:"len($)>0"`
	Description string `form:"description" json:"description"`
}

type UpdatePlaylistParam struct {
	Name        string `form:"name" json:"name" vd:"len($)>0"`
	Description string `form:"description" json:"description"`
}

type UserPlaylistsParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
