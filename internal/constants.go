package internal

const (
	// ApplicationName is the non-capitalized name of the application (do not change this)
	ApplicationName = "distroglyph"

	// FontLogosURL is where the upstream icon font documents the logos it ships.
	FontLogosURL = "https://github.com/Lukas-W/font-logos"
)
