package tui

import "github.com/Veraticus/dealscope/internal/app"

// Line budgets for each region, including titles and pagers.
const (
	chromeLines   = 4 // header, status, help, gap
	minWidth      = 40
	minMainRows   = 4
	mainOverhead  = 4 // title, table header and border, pager
	featuredLines = 10
	popularRows   = 10
	popularLines  = popularRows + 5
)

// layout records which regions fit the terminal and how tall the main
// table may grow.
type layout struct {
	mainRows int
	featured bool
	main     bool
	popular  bool
}

func computeLayout(width, height int, sections app.Sections, pageSize int) layout {
	avail := height - chromeLines
	if width < minWidth || avail < minMainRows+mainOverhead {
		return layout{}
	}

	l := layout{main: true}
	rest := avail - minMainRows - mainOverhead
	if sections.Featured && rest >= featuredLines {
		l.featured = true
		rest -= featuredLines
	}
	if sections.Popular && rest >= popularLines {
		l.popular = true
		rest -= popularLines
	}
	l.mainRows = min(pageSize, minMainRows+rest)
	return l
}

func (l layout) mounts() map[region]bool {
	return map[region]bool{
		regionFeatured: l.featured,
		regionMain:     l.main,
		regionPopular:  l.popular,
	}
}
