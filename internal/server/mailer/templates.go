package mailer

import (
	"fmt"

	"github.com/osteele/liquid"
)

const TypePreRegisterConfirm = "pre_register_confirm"

type template struct {
	subject string
	html    string
	text    string
}

var preRegisterTemplates = map[string]template{
	"ja": {
		subject: "【Gyulist】事前登録ありがとうございます",
		html: `<p>{{ email | escape }} 様</p>
<p>Gyulist の事前登録を受け付けました。リリースの準備が整い次第、こちらのアドレスにご案内をお送りします。</p>
<p><a href="{{ app_url }}">{{ app_url }}</a></p>`,
		text: "{{ email }} 様\n\nGyulist の事前登録を受け付けました。リリースの準備が整い次第ご案内します。\n{{ app_url }}\n",
	},
	"en": {
		subject: "Thanks for pre-registering for Gyulist",
		html: `<p>Hi {{ email | escape }},</p>
<p>You're on the Gyulist waitlist. We'll email this address as soon as your herd can move in.</p>
<p><a href="{{ app_url }}">{{ app_url }}</a></p>`,
		text: "Hi {{ email }},\n\nYou're on the Gyulist waitlist. We'll email you as soon as it opens.\n{{ app_url }}\n",
	},
}

// Templates renders transactional messages with Liquid.
type Templates struct {
	engine *liquid.Engine
	appURL string
}

func NewTemplates(appURL string) *Templates {
	return &Templates{engine: liquid.NewEngine(), appURL: appURL}
}

// PreRegisterConfirmation renders the waitlist confirmation for locale,
// falling back to Japanese.
func (t *Templates) PreRegisterConfirmation(locale, email string) (Message, error) {
	tpl, ok := preRegisterTemplates[locale]
	if !ok {
		tpl = preRegisterTemplates["ja"]
	}
	bindings := map[string]any{"email": email, "app_url": t.appURL}

	msg := Message{To: email}
	for _, part := range []struct {
		src string
		dst *string
	}{
		{tpl.subject, &msg.Subject},
		{tpl.html, &msg.HTML},
		{tpl.text, &msg.Text},
	} {
		out, err := t.engine.ParseAndRenderString(part.src, bindings)
		if err != nil {
			return Message{}, fmt.Errorf("render %s: %w", TypePreRegisterConfirm, err)
		}
		*part.dst = out
	}
	return msg, nil
}
