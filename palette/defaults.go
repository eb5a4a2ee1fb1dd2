package palette

// Built-in palette of the Jepsar theme. Color groups are normal, lightest,
// lighter, darker and darkest.
const (
	PrimaryColor       = "#086CA2;=67;=33;=-33;=-67"
	SecondaryColor     = "#B90091;=67;=33;=-33;=-67"
	ComplementaryColor = "#FF8B00;=67;=33;=-33;=-67"
	PanelColor         = "#F4F4F4"
	BorderRadius       = "unset"
	FontImport         = "@import url(https://fonts.googleapis.com/css?family=Titillium+Web:400,700,400italic)"
	FontFamily         = "'Titillium Web',sans-serif"
)

// DefaultFindValues is used when no find values are configured.
const DefaultFindValues = PrimaryColor + Separator +
	SecondaryColor + Separator +
	ComplementaryColor + Separator +
	PanelColor + Separator +
	BorderRadius + Separator +
	FontImport + Separator +
	FontFamily
