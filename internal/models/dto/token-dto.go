package dto

import "portfolio-api/internal/models"

type TokenDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func TokenToDTO(token *models.Token) *TokenDTO {
	return &TokenDTO{
		AccessToken:  token.Token,
		RefreshToken: token.RefreshToken,
		TokenType:    "bearer",
	}
}
