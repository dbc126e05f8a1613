package document

import (
	"fmt"
	"html"
	"strings"

	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

const htmlStyle = `        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;
            font-size: 10pt;
            line-height: 1.1;
            color: black;
            background: white;
            max-width: 8.5in;
            margin: 0 auto;
            padding: 0.5in;
        }
        .header {
            text-align: center;
            margin-bottom: 15px;
        }
        .name {
            font-size: 22pt;
            font-weight: bold;
            margin-bottom: 6px;
        }
        .contact {
            font-size: 9pt;
            margin-bottom: 6px;
        }
        .contact a {
            color: #0066cc;
            text-decoration: none;
        }
        hr {
            border: none;
            height: 1px;
            background-color: black;
            margin: 8px 0;
        }
        .section-title {
            font-weight: bold;
            text-decoration: underline;
            font-size: 10pt;
            margin: 12px 0 4px 0;
        }
        .entry {
            margin-bottom: 8px;
        }
        .entry-header {
            display: flex;
            justify-content: space-between;
            font-weight: bold;
            font-size: 10pt;
        }
        .entry-subheader {
            display: flex;
            justify-content: space-between;
            font-style: italic;
            margin-bottom: 3px;
            font-size: 9pt;
        }
        .description {
            margin: 3px 0 3px 15px;
            font-size: 9pt;
        }
        .skills-category {
            margin: 3px 0 3px 15px;
            font-size: 9pt;
        }
        @media print {
            body {
                margin: 0;
                padding: 0.5in;
                max-width: none;
            }
            .no-print { display: none; }
        }
        @page {
            margin: 0.5in;
            size: letter;
        }`

// GenerateHTMLPreview renders the resume as a standalone HTML document styled
// for print. The layout mirrors the LaTeX output so the browser print dialog
// produces an equivalent page.
func GenerateHTMLPreview(resume m.ResumeContent) string {
	var b strings.Builder
	info := resume.PersonalInfo

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "    <title>%s - Resume</title>\n", html.EscapeString(info.FullName))
	b.WriteString("    <style>\n" + htmlStyle + "\n    </style>\n</head>\n<body>\n")

	b.WriteString("    <div class=\"header\">\n")
	fmt.Fprintf(&b, "        <div class=\"name\">%s</div>\n", html.EscapeString(info.FullName))
	b.WriteString("        <div class=\"contact\">\n            ")
	b.WriteString(html.EscapeString(info.Email))
	if info.Phone != "" {
		b.WriteString(" | " + html.EscapeString(info.Phone))
	}
	if info.LinkedIn != "" {
		fmt.Fprintf(&b, " | <a href=\"%s\">%s</a>", html.EscapeString(info.LinkedIn), html.EscapeString(stripScheme(info.LinkedIn)))
	}
	if info.Website != "" {
		fmt.Fprintf(&b, " | <a href=\"%s\">%s</a>", html.EscapeString(info.Website), html.EscapeString(stripScheme(info.Website)))
	}
	b.WriteString("\n        </div>\n        <hr>\n    </div>\n")

	if len(resume.Education) > 0 {
		b.WriteString("    <div class=\"section-title\">EDUCATION</div>\n")
		for _, edu := range resume.Education {
			degree := fmt.Sprintf("%s in %s", edu.Degree, edu.Field)
			if edu.GPA != "" {
				degree += " | GPA: " + edu.GPA
			}
			b.WriteString("    <div class=\"entry\">\n")
			fmt.Fprintf(&b, "        <div class=\"entry-header\"><span>%s</span><span></span></div>\n",
				html.EscapeString(edu.Institution))
			fmt.Fprintf(&b, "        <div class=\"entry-subheader\"><span>%s</span><span>%s - %s</span></div>\n",
				html.EscapeString(degree), FormatDate(edu.StartDate), FormatDate(edu.EndDate))
			b.WriteString("    </div>\n")
		}
	}

	if len(resume.Skills) > 0 {
		b.WriteString("    <div class=\"section-title\">TECHNICAL SKILLS</div>\n")
		for _, group := range resume.Skills {
			fmt.Fprintf(&b, "    <div class=\"skills-category\">&bull; %s: %s</div>\n",
				html.EscapeString(group.Category), html.EscapeString(strings.Join(group.Items, ", ")))
		}
	}

	if len(resume.Experience) > 0 {
		b.WriteString("    <div class=\"section-title\">EXPERIENCE</div>\n")
		for _, exp := range resume.Experience {
			endDate := "Present"
			if !exp.Current {
				endDate = FormatDate(exp.EndDate)
			}
			b.WriteString("    <div class=\"entry\">\n")
			fmt.Fprintf(&b, "        <div class=\"entry-header\"><span>%s</span><span>%s</span></div>\n",
				html.EscapeString(exp.Company), html.EscapeString(exp.Location))
			fmt.Fprintf(&b, "        <div class=\"entry-subheader\"><span>%s</span><span>%s - %s</span></div>\n",
				html.EscapeString(exp.Position), FormatDate(exp.StartDate), endDate)
			for _, bullet := range SplitBullets(exp.Description) {
				fmt.Fprintf(&b, "        <div class=\"description\">&bull; %s</div>\n", html.EscapeString(bullet))
			}
			b.WriteString("    </div>\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
