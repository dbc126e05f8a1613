package document

import (
	"fmt"
	"strings"

	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

// latexReplacer escapes the characters LaTeX treats specially in user content
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}

// GenerateLaTeX renders the resume as a standalone LaTeX document. Sections
// with no entries are omitted entirely.
func GenerateLaTeX(resume m.ResumeContent) string {
	var b strings.Builder

	b.WriteString(`\documentclass[10pt]{extarticle}

\usepackage[top=0.5in, bottom=0.5in, left=0.5in, right=0.5in]{geometry}
\usepackage{enumitem}
\usepackage{tabto}
\usepackage{hyperref}
\hypersetup{
    colorlinks=true,
    linkcolor=blue,
    filecolor=magenta,
    urlcolor=cyan,
    }
\renewcommand{\familydefault}{\sfdefault}

\begin{document}
\begin{center}
\thispagestyle{empty}
`)

	info := resume.PersonalInfo
	fmt.Fprintf(&b, "\\Huge \\textbf{%s \\\\}\n", latexEscape(info.FullName))
	b.WriteString(`\normalsize ` + latexEscape(info.Email))
	if info.Phone != "" {
		b.WriteString(` $\mid$ ` + latexEscape(info.Phone))
	}
	if info.LinkedIn != "" {
		fmt.Fprintf(&b, ` $\mid$ \href{%s}{%s}`, info.LinkedIn, latexEscape(stripScheme(info.LinkedIn)))
	}
	if info.Website != "" {
		fmt.Fprintf(&b, ` $\mid$ \href{%s}{%s}`, info.Website, latexEscape(stripScheme(info.Website)))
	}
	b.WriteString(" \\\\\n\\hrulefill\n\\end{center}\n")

	if len(resume.Education) > 0 {
		b.WriteString("\n\\noindent \\textbf{\\underline{EDUCATION}} \\\\\n")
		for _, edu := range resume.Education {
			dateRange := fmt.Sprintf("%s $-$ %s", FormatDate(edu.StartDate), FormatDate(edu.EndDate))
			gpa := ""
			if edu.GPA != "" {
				gpa = fmt.Sprintf(` \hspace{2mm} GPA: %s`, latexEscape(edu.GPA))
			}
			fmt.Fprintf(&b, "\\textbf{%s} \\hfill \\\\\n\\textit{%s in %s}%s \\hfill %s \\\\\n",
				latexEscape(edu.Institution), latexEscape(edu.Degree), latexEscape(edu.Field), gpa, dateRange)
		}
		b.WriteString("\\vspace{1mm}\n")
	}

	if len(resume.Skills) > 0 {
		b.WriteString("\n\\noindent \\textbf{\\underline{TECHNICAL SKILLS}}\n")
		for _, group := range resume.Skills {
			b.WriteString("\\begin{itemize}[noitemsep,nolistsep,leftmargin=1 cm]\n")
			fmt.Fprintf(&b, "\\item {%s: %s}\n", latexEscape(group.Category), latexEscape(strings.Join(group.Items, ", ")))
			b.WriteString("\\end{itemize}\n")
		}
		b.WriteString("\\vspace{1.5mm}\n")
	}

	if len(resume.Experience) > 0 {
		b.WriteString("\n\\noindent \\textbf{\\underline{EXPERIENCE}} \\\\\n")
		for _, exp := range resume.Experience {
			endDate := "Present"
			if !exp.Current {
				endDate = FormatDate(exp.EndDate)
			}
			dateRange := fmt.Sprintf("%s $-$ %s", FormatDate(exp.StartDate), endDate)

			fmt.Fprintf(&b, "\\noindent \\textbf{%s} \\hfill %s \\\\\n\\textit{%s} \\hfill %s\n",
				latexEscape(exp.Company), latexEscape(exp.Location), latexEscape(exp.Position), dateRange)
			b.WriteString("\\begin{itemize}[noitemsep, nolistsep, leftmargin=1cm]\n")
			for _, bullet := range SplitBullets(exp.Description) {
				fmt.Fprintf(&b, "\\item {%s}\n", latexEscape(bullet))
			}
			b.WriteString("\\end{itemize}\n\\vspace{1mm}\n")
		}
	}

	b.WriteString("\n\\end{document}\n")
	return b.String()
}
