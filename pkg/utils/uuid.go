package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador alfanumérico curto
func GenerateID(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	return gonanoid.Generate(characters, length)
}
