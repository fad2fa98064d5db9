package mail

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Volunteer carries the fields the welcome message interpolates.
type Volunteer struct {
	Name     string
	Email    string
	Role     string
	Division string
	Position string
}

// Message is the rendered subject/HTML/plain-text triple.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

const welcomeSubject = "Selamat Datang di GSJS Tunjungan Plaza - Akun Anda Telah Dibuat"

var welcomeHTML = htmltemplate.Must(htmltemplate.New("welcome_html").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #3f8cff, #8c5eff); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .credentials { background: #fff; padding: 20px; border-radius: 8px; border-left: 4px solid #3f8cff; margin: 20px 0; }
    .button { display: inline-block; background: #3f8cff; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
    .warning { background: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; border-radius: 5px; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎉 Selamat Datang!</h1>
      <p>Akun Semi Volunteer Anda telah berhasil dibuat</p>
    </div>

    <div class="content">
      <h2>Halo {{.Volunteer.Name}}!</h2>
      <p>Selamat bergabung dengan tim <strong>GSJS Tunjungan Plaza</strong> sebagai <strong>{{.Volunteer.Role}}</strong> di divisi <strong>{{.Volunteer.Division}}</strong>.</p>

      <div class="credentials">
        <h3>📧 Informasi Login Anda:</h3>
        <p><strong>Email:</strong> {{.Volunteer.Email}}</p>
        <p><strong>Password:</strong> <code style="background: #e9ecef; padding: 4px 8px; border-radius: 4px; font-size: 16px;">{{.Password}}</code></p>
        <p><strong>Posisi:</strong> {{.Volunteer.Position}}</p>
      </div>

      <div class="warning">
        <h4>⚠️ Penting untuk Keamanan:</h4>
        <ul>
          <li>Segera login dan ubah password Anda</li>
          <li>Jangan bagikan password ini kepada siapa pun</li>
          <li>Simpan informasi login ini di tempat yang aman</li>
        </ul>
      </div>

      <p>Anda dapat login ke sistem menggunakan kredensial di atas. Setelah login pertama kali, kami sangat menyarankan untuk mengganti password Anda dengan yang lebih mudah diingat.</p>

      <div style="text-align: center;">
        <a href="{{.BaseURL}}" class="button">
          🚀 Login Sekarang
        </a>
      </div>

      <p>Jika Anda memiliki pertanyaan atau membutuhkan bantuan, jangan ragu untuk menghubungi tim IT atau administrator sistem.</p>

      <p>Terima kasih telah bergabung dengan kami!</p>
    </div>

    <div class="footer">
      <p>Email ini dikirim secara otomatis oleh sistem GSJS Tunjungan Plaza</p>
      <p>© {{.Year}} GSJS Tunjungan Plaza. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var welcomeText = texttemplate.Must(texttemplate.New("welcome_text").Parse(`Selamat Datang di GSJS Tunjungan Plaza!

Halo {{.Volunteer.Name}},

Akun Semi Volunteer Anda telah berhasil dibuat dengan detail berikut:

Email: {{.Volunteer.Email}}
Password: {{.Password}}
Role: {{.Volunteer.Role}}
Divisi: {{.Volunteer.Division}}
Posisi: {{.Volunteer.Position}}

PENTING: Segera login dan ubah password Anda untuk keamanan.

Terima kasih telah bergabung dengan tim kami!

GSJS Tunjungan Plaza
`))

type welcomeData struct {
	Volunteer Volunteer
	Password  string
	BaseURL   string
	Year      int
}

// RenderWelcome builds the welcome message for a newly created volunteer
// account. Pure apart from the current year in the copyright line.
func RenderWelcome(v Volunteer, password, baseURL string) (Message, error) {
	data := welcomeData{
		Volunteer: v,
		Password:  password,
		BaseURL:   baseURL,
		Year:      time.Now().Year(),
	}

	var html strings.Builder
	if err := welcomeHTML.Execute(&html, data); err != nil {
		return Message{}, err
	}
	var text strings.Builder
	if err := welcomeText.Execute(&text, data); err != nil {
		return Message{}, err
	}

	return Message{
		Subject: welcomeSubject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
