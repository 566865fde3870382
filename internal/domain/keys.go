package domain

type CtxKey string

const KeyUserID CtxKey = "UserID"
