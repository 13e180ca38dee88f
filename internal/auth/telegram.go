package auth

import (
	"fmt"
	"html"
	"strings"
)

// TelegramWidgetScript is the external login widget script.
const TelegramWidgetScript = "https://telegram.org/js/telegram-widget.js?22"

// TelegramWidget describes the embedded Telegram login widget.
type TelegramWidget struct {
	Bot           string
	AuthURL       string
	Size          string
	RequestAccess string
}

// DefaultTelegramWidget returns the production widget settings.
func DefaultTelegramWidget() TelegramWidget {
	return TelegramWidget{
		Bot:           "fastcodingidbot",
		AuthURL:       "https://fastcoding.moorfo.uz/login",
		Size:          "medium",
		RequestAccess: "write",
	}
}

// Attributes returns the data attributes in embed order.
func (w TelegramWidget) Attributes() [][2]string {
	return [][2]string{
		{"data-telegram-login", w.Bot},
		{"data-size", w.Size},
		{"data-auth-url", w.AuthURL},
		{"data-request-access", w.RequestAccess},
	}
}

// ScriptTag renders the HTML embed for the widget.
func (w TelegramWidget) ScriptTag() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<script async src="%s"`, html.EscapeString(TelegramWidgetScript))
	for _, attr := range w.Attributes() {
		fmt.Fprintf(&b, ` %s="%s"`, attr[0], html.EscapeString(attr[1]))
	}
	b.WriteString("></script>")
	return b.String()
}
