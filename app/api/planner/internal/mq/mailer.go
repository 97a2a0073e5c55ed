package mq

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/RayDR/YelpOut/app/api/planner/internal/config"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

type mailStrings struct {
	subject string
	heading string
	when    string
	where   string
	group   string
	skipped string
	footer  string
}

var mailCatalog = map[string]mailStrings{
	"en": {
		subject: "Your YelpOut itinerary",
		heading: "Here's your plan",
		when:    "When",
		where:   "Where",
		group:   "Group",
		skipped: "skipped",
		footer:  "Planned with YelpOut. Have a great outing!",
	},
	"es": {
		subject: "Tu itinerario de YelpOut",
		heading: "Aquí está tu plan",
		when:    "Cuándo",
		where:   "Dónde",
		group:   "Grupo",
		skipped: "omitido",
		footer:  "Planeado con YelpOut. ¡Que tengas una gran salida!",
	},
}

// BuildItineraryEmail renders the HTML body for a send-itinerary task.
func BuildItineraryEmail(p SendItineraryPayload) (subject, body string) {
	t, ok := mailCatalog[p.Language]
	if !ok {
		t = mailCatalog["en"]
	}

	var b strings.Builder
	b.WriteString("<html><body style=\"font-family:sans-serif\">")
	fmt.Fprintf(&b, "<h2>%s</h2>", t.heading)
	fmt.Fprintf(&b, "<p>%s: %s &middot; %s: %s", t.when, p.PlanDate, t.where, p.Location)
	if p.GroupDisplay != "" {
		fmt.Fprintf(&b, " &middot; %s: %s", t.group, p.GroupDisplay)
	}
	b.WriteString("</p><ul>")

	for _, block := range p.Blocks {
		if block.Skipped {
			continue
		}
		fmt.Fprintf(&b, "<li><strong>%s</strong> (%s - %s)", block.Label, block.StartTime, block.EndTime)
		if place := selectedPlace(block); place != nil {
			fmt.Fprintf(&b, "<br/>%s", place.Name)
			if place.Address != "" {
				fmt.Fprintf(&b, " &middot; %s", place.Address)
			}
			if place.Rating > 0 {
				fmt.Fprintf(&b, " &middot; %.1f★", place.Rating)
			}
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>%s</p>", t.footer)
	b.WriteString("</body></html>")

	return t.subject, b.String()
}

func selectedPlace(block itinerary.PlanBlock) *itinerary.Place {
	if block.Selected == "" {
		return nil
	}
	for i := range block.Options {
		if block.Options[i].ID == block.Selected {
			return &block.Options[i]
		}
	}
	return nil
}

// SendMail delivers one HTML email through the configured SMTP relay.
func SendMail(c config.SmtpConf, to, subject, htmlBody string) error {
	if c.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	from := c.From
	if from == "" {
		from = c.User
	}

	msg := strings.Join([]string{
		"From: YelpOut <" + from + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	var auth smtp.Auth
	if c.User != "" {
		auth = smtp.PlainAuth("", c.User, c.Password, c.Host)
	}
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}
