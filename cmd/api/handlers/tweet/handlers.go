package tweet

type CreateTweetParam struct {
	Content string `form:"content" json:"content" vd:"len($)>0"`
}

type UpdateTweetParam struct {
	Content string `form:"content" json:"content" vd:"len($)>0"`
}

type UserTweetsParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
