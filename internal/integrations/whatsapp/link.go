package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkBuilder собирает deep link для отправки уведомления администратору
// о новом бронировании через WhatsApp (wa.me)
type LinkBuilder struct {
	adminNumber string
}

// NewLinkBuilder создает билдер ссылок на номер администратора студии.
// Номер принимается в международном формате без плюса, например "6285886933826".
func NewLinkBuilder(adminNumber string) *LinkBuilder {
	return &LinkBuilder{adminNumber: strings.TrimPrefix(adminNumber, "+")}
}

// NewBookingLink формирует ссылку wa.me с заполненным сообщением о бронировании.
// Текст сообщения совпадает с тем, что клиент отправляет администратору вручную,
// поэтому формат менять нельзя без согласования с фронтендом.
func (b *LinkBuilder) NewBookingLink(roomName, nama, tanggal, jam string) string {
	message := fmt.Sprintf(
		"*BOOKING BARU*\nStudio: *%s*\nNama: %s\nTanggal: %s\nJam: %s",
		roomName, nama, tanggal, jam,
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", b.adminNumber, url.QueryEscape(message))
}
