package interaction

type AddCommentParam struct {
	Content string `form:"content" json:"content" vd:"len($)>0"`
}

type UpdateCommentParam struct {
	Content string `form:"content" json:"content" vd:"len($)>0"`
}

type CommentListParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type LikedVideoParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
