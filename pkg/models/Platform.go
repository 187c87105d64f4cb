package models

type Platform string

const (
	PlatformApple    Platform = "apple"
	PlatformSpotify  Platform = "spotify"
	PlatformGoogle   Platform = "google"
	PlatformDeezer   Platform = "deezer"
	PlatformAmazon   Platform = "amazon"
	PlatformAudioNow Platform = "audionow"
	PlatformYouTube  Platform = "youtube"
	PlatformWDR      Platform = "wdr"
	PlatformRSS      Platform = "rss"
)

var platformLabels = map[Platform]string{
	PlatformApple:    "Apple Podcasts",
	PlatformSpotify:  "Spotify",
	PlatformGoogle:   "Google Podcasts",
	PlatformDeezer:   "Deezer",
	PlatformAmazon:   "Amazon Music",
	PlatformAudioNow: "AudioNow",
	PlatformYouTube:  "YouTube",
	PlatformWDR:      "WDR Mediathek",
	PlatformRSS:      "RSS-Feed",
}

func (p Platform) IsValid() bool {
	_, ok := platformLabels[p]
	return ok
}

// Label is the display name shown on the platform button.
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}

	return string(p)
}
