package domain

// PublisherTier separates well known publishers from everyone else.
type PublisherTier string

const (
	PublisherTop     PublisherTier = "Top"
	PublisherUnknown PublisherTier = "Unknown"
)

func AllPublisherTiers() []PublisherTier {
	return []PublisherTier{PublisherTop, PublisherUnknown}
}

func ParsePublisherTier(raw string) (PublisherTier, error) {
	switch PublisherTier(raw) {
	case PublisherTop:
		return PublisherTop, nil
	case PublisherUnknown:
		return PublisherUnknown, nil
	}
	return "", &LookupError{Kind: "publisher tier", Value: raw}
}

func (t PublisherTier) Valid() bool {
	return t == PublisherTop || t == PublisherUnknown
}
