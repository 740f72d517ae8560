package utils

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsappDeepLink(t *testing.T) {
	link := WhatsappDeepLink("+84 901 234 567", "Đơn DH-0042 đã được tiếp nhận")

	if !strings.HasPrefix(link, "https://wa.me/84901234567?text=") {
		t.Errorf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("deep link is not a valid URL: %v", err)
	}
	if got := u.Query().Get("text"); !strings.Contains(got, "DH-0042") {
		t.Errorf("pre-filled text %q must contain the order code", got)
	}
}

func TestSendWhatsappFallbackWhenUnconfigured(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")

	deepLink, sent, err := SendWhatsapp("84901234567", "Đơn DH-0042: Đã xác nhận")
	if err != nil {
		t.Fatalf("fallback must not be an error, got: %v", err)
	}
	if sent {
		t.Error("nothing should be sent without provider config")
	}
	if !strings.Contains(deepLink, "wa.me/84901234567") || !strings.Contains(deepLink, "DH-0042") {
		t.Errorf("deep link %q must target the number and carry the order code", deepLink)
	}
}

func TestSendWhatsappNoRecipient(t *testing.T) {
	deepLink, sent, err := SendWhatsapp("", "text")
	if deepLink != "" || sent || err != nil {
		t.Errorf("empty recipient must be a silent no-op, got (%q, %v, %v)", deepLink, sent, err)
	}
}
