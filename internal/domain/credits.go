package domain

// ContributorRef is one credited participant of an item.
type ContributorRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Job       string `json:"job,omitempty"`
}

// Credits lists the cast and crew of a single item, cast in billing order.
type Credits struct {
	Cast []ContributorRef `json:"cast"`
	Crew []ContributorRef `json:"crew"`
}

// CrewWork is an item a contributor worked on behind the camera.
type CrewWork struct {
	Item
	Job string `json:"job"`
}

// Filmography is a contributor's credited works.
type Filmography struct {
	Cast []Item     `json:"cast"`
	Crew []CrewWork `json:"crew"`
}

// CrewWithJob returns the crew entries whose job equals job.
func (c *Credits) CrewWithJob(job string) []ContributorRef {
	if c == nil {
		return nil
	}
	var out []ContributorRef
	for _, m := range c.Crew {
		if m.Job == job {
			out = append(out, m)
		}
	}
	return out
}

// WorksWithJob returns up to limit crew works whose job equals job.
func (f *Filmography) WorksWithJob(job string, limit int) []Item {
	if f == nil {
		return nil
	}
	var out []Item
	for _, w := range f.Crew {
		if len(out) >= limit {
			break
		}
		if w.Job == job {
			out = append(out, w.Item)
		}
	}
	return out
}
