package assets

import "golang.org/x/image/font/gofont/gobold"

// FontTTF is the bundled bold sans-serif face used when no system font resolves.
var FontTTF = gobold.TTF

// FontName labels FontTTF in logs.
const FontName = "Go Bold (built-in)"
