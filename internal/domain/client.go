package domain

import "strings"

// Client - зарегистрированный клиент проката.
// Создается один раз при регистрации, движком бронирования не изменяется.
type Client struct {
	ClientID     int64  `json:"client_id"`
	FullName     string `json:"full_name"`
	PassportData string `json:"passport_data"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// ClientWithHash - клиент вместе с хешем пароля.
// Используется только слоем аутентификации, наружу не отдается.
type ClientWithHash struct {
	Client       Client
	PasswordHash string
}

// Normalize обрезает пробелы в обязательных полях и приводит
// опциональные поля к пустой строке, если они состоят из пробелов
func (c *Client) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.PassportData = strings.TrimSpace(c.PassportData)
	c.Login = strings.TrimSpace(c.Login)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
}

// Validate проверяет обязательные поля клиента
func (c *Client) Validate() error {
	if c.FullName == "" || c.PassportData == "" || c.Login == "" || c.Email == "" {
		return ErrValidation
	}
	return nil
}
