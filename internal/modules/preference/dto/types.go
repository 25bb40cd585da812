package dto

type ThemeOutput struct {
	Theme string
	Dark  bool
}
