package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

// ConfirmationParams describes one confirmation email: who gets it, in which
// language, and whether they made the founding-member t-shirt window.
type ConfirmationParams struct {
	Recipient      string
	Name           string
	Locale         string // "en" or "pt"
	TshirtEligible bool
}

// EmailResult is the never-throws outcome of a send attempt. Provider errors
// and missing credentials are folded into a failure result; they are never
// allowed to fail the signup itself.
type EmailResult struct {
	Success bool
	Error   string
}

// ConfirmationMailer is what the signup pipeline needs from the email layer.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, p ConfirmationParams) EmailResult
}

type emailPackage struct {
	Name string
	Desc string
}

type emailContent struct {
	Subject       string
	Greeting      string // fmt pattern, %s = recipient name
	Welcome       string
	TshirtYes     string
	TshirtNo      string
	LaunchTitle   string
	LaunchText    string
	PackagesTitle string
	Packages      []emailPackage
	LocationTitle string
	LocationText  string
	Closing       string
	Signature     string
	Tagline       string
	FollowUs      string
}

var emailContents = map[string]emailContent{
	"en": {
		Subject:       "Welcome to OPO.RUN - You're In!",
		Greeting:      "Hi %s,",
		Welcome:       "Welcome to the OPO.RUN family! We're thrilled to have you join us on this journey.",
		TshirtYes:     "🎉 Great news! You're among our first 20 members, which means you'll receive an exclusive OPO.RUN t-shirt and a special founding member discount!",
		TshirtNo:      "Thank you for signing up! As a founding member, you'll receive a special discount when we launch.",
		LaunchTitle:   "What's Coming",
		LaunchText:    "We're launching in February 2025 in Leça da Palmeira, Porto. Get ready for a running experience like no other.",
		PackagesTitle: "Our Packages",
		Packages: []emailPackage{
			{Name: "Starter", Desc: "Perfect for beginners - 2 group classes/week"},
			{Name: "Evolution", Desc: "For consistent progress - 3 group classes/week + strength sessions"},
			{Name: "Performance", Desc: "For race preparation - Unlimited classes + premium support"},
			{Name: "Online Mentoring", Desc: "Train from anywhere - Weekly video sessions + personalized plans"},
		},
		LocationTitle: "Find Us",
		LocationText:  "Leça da Palmeira, Porto, Portugal",
		Closing:       "We'll be in touch soon with more details. In the meantime, follow us on social media for updates!",
		Signature:     "The OPO.RUN Team",
		Tagline:       "Run better. Run pain-free. Run forever.",
		FollowUs:      "Follow us:",
	},
	"pt": {
		Subject:       "Bem-vindo ao OPO.RUN - Estás Dentro!",
		Greeting:      "Olá %s,",
		Welcome:       "Bem-vindo à família OPO.RUN! Estamos muito felizes por te teres juntado a nós nesta jornada.",
		TshirtYes:     "🎉 Ótimas notícias! Estás entre os nossos primeiros 20 membros, o que significa que vais receber uma t-shirt exclusiva OPO.RUN e um desconto especial de membro fundador!",
		TshirtNo:      "Obrigado por te inscreveres! Como membro fundador, vais receber um desconto especial quando lançarmos.",
		LaunchTitle:   "O Que Aí Vem",
		LaunchText:    "Vamos lançar em Fevereiro de 2025 em Leça da Palmeira, Porto. Prepara-te para uma experiência de corrida única.",
		PackagesTitle: "Os Nossos Pacotes",
		Packages: []emailPackage{
			{Name: "Starter", Desc: "Perfeito para iniciantes - 2 aulas de grupo/semana"},
			{Name: "Evolution", Desc: "Para progresso consistente - 3 aulas de grupo/semana + sessões de força"},
			{Name: "Performance", Desc: "Para preparação de provas - Aulas ilimitadas + acompanhamento premium"},
			{Name: "Mentoria Online", Desc: "Treina de qualquer lugar - Sessões de vídeo semanais + planos personalizados"},
		},
		LocationTitle: "Encontra-nos",
		LocationText:  "Leça da Palmeira, Porto, Portugal",
		Closing:       "Entraremos em contacto em breve com mais detalhes. Entretanto, segue-nos nas redes sociais para atualizações!",
		Signature:     "A Equipa OPO.RUN",
		Tagline:       "Corre melhor. Corre sem dor. Corre para sempre.",
		FollowUs:      "Segue-nos:",
	},
}

// Inline SVG logo, embedded base64 for email client compatibility.
const logoSVG = `<svg width="200" height="50" viewBox="0 0 400 100" xmlns="http://www.w3.org/2000/svg">
  <text x="50" y="68" font-family="Arial, Helvetica, sans-serif" font-size="48" font-weight="900" fill="#ffffff" letter-spacing="-1">OPO</text>
  <circle cx="175" cy="58" r="5" fill="#666666"/>
  <text x="190" y="68" font-family="Arial, Helvetica, sans-serif" font-size="48" font-weight="300" fill="#ffffff" letter-spacing="3">RUN</text>
</svg>`

// template.URL keeps html/template from rejecting the data: scheme.
var logoURI = template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(logoSVG)))

type confirmationData struct {
	Locale         string
	TshirtEligible bool
	TshirtMessage  string
	Greeting       string
	LogoURI        template.URL
	emailContent
}

const confirmationHTML = `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="dark">
  <title>{{.Subject}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: #000000; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #000000; color: #ffffff;">

    <div style="padding: 40px 30px; text-align: center; border-bottom: 1px solid rgba(255,255,255,0.1);">
      <img src="{{.LogoURI}}" alt="OPO.RUN" width="200" style="max-width: 200px; height: auto;" />
    </div>

    <div style="padding: 40px 30px;">

      <p style="font-size: 18px; margin: 0 0 20px 0; color: #ffffff;">
        {{.Greeting}}
      </p>

      <p style="font-size: 16px; line-height: 1.6; margin: 0 0 25px 0; color: rgba(255,255,255,0.8);">
        {{.Welcome}}
      </p>

      <div style="background: {{if .TshirtEligible}}rgba(34,197,94,0.1){{else}}rgba(255,255,255,0.05){{end}}; padding: 20px; margin: 0 0 30px 0; border-left: 3px solid {{if .TshirtEligible}}#22c55e{{else}}rgba(255,255,255,0.3){{end}};">
        <p style="font-size: 16px; line-height: 1.6; margin: 0; color: {{if .TshirtEligible}}#4ade80{{else}}rgba(255,255,255,0.8){{end}};">
          {{.TshirtMessage}}
        </p>
      </div>

      <h2 style="font-size: 20px; font-weight: 700; margin: 0 0 15px 0; color: #ffffff; text-transform: uppercase; letter-spacing: 0.05em;">
        {{.LaunchTitle}}
      </h2>
      <p style="font-size: 16px; line-height: 1.6; margin: 0 0 30px 0; color: rgba(255,255,255,0.8);">
        {{.LaunchText}}
      </p>

      <h2 style="font-size: 20px; font-weight: 700; margin: 0 0 15px 0; color: #ffffff; text-transform: uppercase; letter-spacing: 0.05em;">
        {{.PackagesTitle}}
      </h2>
      <div style="margin: 0 0 30px 0;">
        {{range .Packages}}
        <div style="padding: 15px 0; border-bottom: 1px solid rgba(255,255,255,0.1);">
          <strong style="color: #ffffff; font-size: 15px;">{{.Name}}</strong>
          <p style="margin: 5px 0 0 0; font-size: 14px; color: rgba(255,255,255,0.6);">{{.Desc}}</p>
        </div>
        {{end}}
      </div>

      <h2 style="font-size: 20px; font-weight: 700; margin: 0 0 15px 0; color: #ffffff; text-transform: uppercase; letter-spacing: 0.05em;">
        {{.LocationTitle}}
      </h2>
      <p style="font-size: 16px; line-height: 1.6; margin: 0 0 30px 0; color: rgba(255,255,255,0.8);">
        📍 {{.LocationText}}
      </p>

      <p style="font-size: 16px; line-height: 1.6; margin: 0 0 25px 0; color: rgba(255,255,255,0.8);">
        {{.Closing}}
      </p>

      <p style="font-size: 16px; margin: 0; color: #ffffff;">
        {{.Signature}}
      </p>
    </div>

    <div style="padding: 30px; text-align: center; border-top: 1px solid rgba(255,255,255,0.1);">
      <p style="font-size: 12px; margin: 0 0 15px 0; color: rgba(255,255,255,0.5); font-style: italic;">
        "{{.Tagline}}"
      </p>

      <p style="font-size: 12px; margin: 0 0 10px 0; color: rgba(255,255,255,0.5);">
        {{.FollowUs}}
      </p>

      <div style="margin: 0 0 20px 0;">
        <a href="https://instagram.com/opo.run" style="color: #ffffff; text-decoration: none; margin: 0 10px; font-size: 14px;">Instagram</a>
        <a href="https://strava.com/clubs/oporun" style="color: #ffffff; text-decoration: none; margin: 0 10px; font-size: 14px;">Strava</a>
      </div>

      <p style="font-size: 11px; margin: 0; color: rgba(255,255,255,0.3);">
        OPO.RUN | Leça da Palmeira, Porto, Portugal
      </p>
    </div>
  </div>
</body>
</html>
`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))

// contentFor falls back to English for unknown locales.
func contentFor(locale string) emailContent {
	if t, ok := emailContents[locale]; ok {
		return t
	}
	return emailContents["en"]
}

func renderConfirmationHTML(name, locale string, tshirtEligible bool) (string, error) {
	t := contentFor(locale)

	tshirtMessage := t.TshirtNo
	if tshirtEligible {
		tshirtMessage = t.TshirtYes
	}

	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, confirmationData{
		Locale:         locale,
		TshirtEligible: tshirtEligible,
		TshirtMessage:  tshirtMessage,
		Greeting:       fmt.Sprintf(t.Greeting, name),
		LogoURI:        logoURI,
		emailContent:   t,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}

// ResendMailer sends through the Resend transactional email API.
type ResendMailer struct {
	client    *resend.Client
	apiKey    string
	from      string
	teamEmail string
}

func NewResendMailer() *ResendMailer {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not configured — confirmation emails will be skipped")
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "OPO.RUN <hello@oporto.run>"
	}

	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		apiKey:    apiKey,
		from:      from,
		teamEmail: os.Getenv("TEAM_NOTIFICATION_EMAIL"),
	}
}

func (m *ResendMailer) SendConfirmation(ctx context.Context, p ConfirmationParams) EmailResult {
	if m.apiKey == "" {
		return EmailResult{Success: false, Error: "email service not configured"}
	}

	html, err := renderConfirmationHTML(p.Name, p.Locale, p.TshirtEligible)
	if err != nil {
		log.Printf("❌ [EMAIL] %v", err)
		return EmailResult{Success: false, Error: "failed to render email"}
	}

	_, err = m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{p.Recipient},
		Subject: contentFor(p.Locale).Subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("❌ [EMAIL] failed to send confirmation to %s: %v", p.Recipient, err)
		return EmailResult{Success: false, Error: "failed to send email"}
	}

	return EmailResult{Success: true}
}

// SendTeamDigest emails the team a short new-signups summary. Used by the
// digest worker; a missing TEAM_NOTIFICATION_EMAIL just means log-only mode.
func (m *ResendMailer) SendTeamDigest(ctx context.Context, newCount, total int64) EmailResult {
	if m.apiKey == "" {
		return EmailResult{Success: false, Error: "email service not configured"}
	}
	if m.teamEmail == "" {
		return EmailResult{Success: false, Error: "TEAM_NOTIFICATION_EMAIL not configured"}
	}

	html := fmt.Sprintf(
		`<p>%d new signup(s) since the last digest.</p><p>Total submissions: %d.</p>`,
		newCount, total,
	)

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.teamEmail},
		Subject: fmt.Sprintf("OPO.RUN signups: %d new", newCount),
		Html:    html,
	})
	if err != nil {
		log.Printf("❌ [EMAIL] failed to send team digest: %v", err)
		return EmailResult{Success: false, Error: "failed to send email"}
	}

	return EmailResult{Success: true}
}
