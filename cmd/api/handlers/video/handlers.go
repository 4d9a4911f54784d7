package video

type VideoListParam struct {
	Keyword   string `query:"keyword"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type PublishVideoParam struct {
	Title       string `form:"title" vd:"len($)>0"`
	Description string `form:"description"`
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
