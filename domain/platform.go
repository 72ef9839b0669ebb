package domain

// PlatformCode is the short hardware code the classifier was trained on.
type PlatformCode string

const (
	PlatformAtari2600  PlatformCode = "2600"
	PlatformWonderSwan PlatformCode = "WS"
	PlatformXbox       PlatformCode = "XB"
	PlatformXbox360    PlatformCode = "X360"
	PlatformXboxOne    PlatformCode = "XOne"
	PlatformPCFX       PlatformCode = "PCFX"
	PlatformNeoGeo     PlatformCode = "NG"
	Platform3DS        PlatformCode = "3DS"
	PlatformN64        PlatformCode = "N64"
	PlatformDS         PlatformCode = "DS"
	PlatformNES        PlatformCode = "NES"
	PlatformGameBoy    PlatformCode = "GB"
	PlatformGBA        PlatformCode = "GBA"
	PlatformGameCube   PlatformCode = "GC"
	PlatformWii        PlatformCode = "Wii"
	PlatformWiiU       PlatformCode = "WiiU"
	Platform3DO        PlatformCode = "3DO"
	PlatformPC         PlatformCode = "PC"
	PlatformSegaCD     PlatformCode = "SCD"
	PlatformDreamcast  PlatformCode = "DC"
	PlatformGameGear   PlatformCode = "GG"
	PlatformGenesis    PlatformCode = "GEN"
	PlatformSaturn     PlatformCode = "SAT"
	PlatformPS         PlatformCode = "PS"
	PlatformPS2        PlatformCode = "PS2"
	PlatformPS3        PlatformCode = "PS3"
	PlatformPS4        PlatformCode = "PS4"
	PlatformPSP        PlatformCode = "PSP"
	PlatformPSVita     PlatformCode = "PSV"
	PlatformSNES       PlatformCode = "SNES"
	PlatformTurboGrafx PlatformCode = "TG16"
)

type platformEntry struct {
	code PlatformCode
	name string
}

// platformTable is ordered the way the form lists platforms.
var platformTable = [...]platformEntry{
	{PlatformAtari2600, "Atari 2600"},
	{PlatformWonderSwan, "Bandai WonderSwan"},
	{PlatformXbox, "Microsoft Xbox"},
	{PlatformXbox360, "Microsoft Xbox 360"},
	{PlatformXboxOne, "Microsoft Xbox One"},
	{PlatformPCFX, "NEC PC-FX"},
	{PlatformNeoGeo, "Neo Geo"},
	{Platform3DS, "Nintendo 3DS"},
	{PlatformN64, "Nintendo 64"},
	{PlatformDS, "Nintendo DS"},
	{PlatformNES, "Nintendo Entertainment System (NES)"},
	{PlatformGameBoy, "Nintendo Game Boy"},
	{PlatformGBA, "Nintendo Game Boy Advance"},
	{PlatformGameCube, "Nintendo GameCube"},
	{PlatformWii, "Nintendo Wii"},
	{PlatformWiiU, "Nintendo WiiU"},
	{Platform3DO, "Panasonic 3DO"},
	{PlatformPC, "PC"},
	{PlatformSegaCD, "Sega CD"},
	{PlatformDreamcast, "Sega Dreamcast"},
	{PlatformGameGear, "Sega Game Gear"},
	{PlatformGenesis, "Sega Genesis"},
	{PlatformSaturn, "Sega Saturn"},
	{PlatformPS, "Sony PlayStation"},
	{PlatformPS2, "Sony PlayStation 2"},
	{PlatformPS3, "Sony PlayStation 3"},
	{PlatformPS4, "Sony PlayStation 4"},
	{PlatformPSP, "Sony PlayStation Portable (PSP)"},
	{PlatformPSVita, "Sony PlayStation Vita"},
	{PlatformSNES, "Super Nintendo Entertainment System (SNES)"},
	{PlatformTurboGrafx, "TurboGrafx-16"},
}

var platformNames = func() map[PlatformCode]string {
	m := make(map[PlatformCode]string, len(platformTable))
	for _, p := range platformTable {
		m[p.code] = p.name
	}
	return m
}()

// Platform is a code paired with its display name.
type Platform struct {
	Code        PlatformCode `json:"code"`
	DisplayName string       `json:"display_name"`
}

// PlatformDisplayName returns the human readable name for code.
func PlatformDisplayName(code PlatformCode) (string, error) {
	name, ok := platformNames[code]
	if !ok {
		return "", &LookupError{Kind: "platform", Value: string(code)}
	}
	return name, nil
}

// AllPlatforms returns every platform in display order.
func AllPlatforms() []Platform {
	out := make([]Platform, 0, len(platformTable))
	for _, p := range platformTable {
		out = append(out, Platform{Code: p.code, DisplayName: p.name})
	}
	return out
}

// ParsePlatformCode converts a raw code into a PlatformCode.
func ParsePlatformCode(raw string) (PlatformCode, error) {
	code := PlatformCode(raw)
	if _, ok := platformNames[code]; !ok {
		return "", &LookupError{Kind: "platform", Value: raw}
	}
	return code, nil
}

func (c PlatformCode) Valid() bool {
	_, ok := platformNames[c]
	return ok
}
