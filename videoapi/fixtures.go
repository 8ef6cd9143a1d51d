package videoapi

func fixtureMedia() []MediaEntry {
	return []MediaEntry{
		{
			ID: "0_k8x2m1qa", Name: "Welcome to the Platform", UserID: "alice",
			Description: "A short tour of the media library, the upload flow and the player. Recorded for new partners during onboarding and refreshed every quarter.",
			Tags:        "onboarding,tour", CategoriesIDs: "101", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 184, Plays: 1520, Views: 2210, CreatedAt: 1704067200, UpdatedAt: 1706745600,
			ThumbnailURL: "https://cdn.example.com/p/100/thumbnail/entry_id/0_k8x2m1qa",
		},
		{
			ID: "0_b7c4d9ef", Name: "Quarterly Keynote", UserID: "bob",
			Description: "Full recording of the quarterly keynote covering product direction, the analytics roadmap, customer stories from three regions and a long question and answer session with the leadership team.",
			Tags:        "keynote,strategy", CategoriesIDs: "102", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 3620, Plays: 4875, Views: 6120, CreatedAt: 1705276800, UpdatedAt: 1705363200,
		},
		{
			ID: "0_r3t5y7ui", Name: "Encoding Best Practices", UserID: "alice",
			Description: "How to prepare source files for adaptive bitrate encoding.",
			Tags:        "encoding,training", CategoriesIDs: "103", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 942, Plays: 733, Views: 980, CreatedAt: 1706140800, UpdatedAt: 1706227200,
		},
		{
			ID: "0_z1x2c3v4", Name: "Customer Story: Retail", UserID: "carol",
			Description: "A retail customer explains how they moved their training catalogue to on-demand video.",
			Tags:        "customer,retail", CategoriesIDs: "102,104", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 421, Plays: 1290, Views: 1604, CreatedAt: 1707004800, UpdatedAt: 1707091200,
		},
		{
			ID: "0_q9w8e7r6", Name: "Podcast Episode 12", UserID: "dave",
			Description: "Audio-only episode about accessibility, captions and transcripts.",
			Tags:        "podcast,accessibility", CategoriesIDs: "105", MediaType: MediaTypeAudio, Status: EntryStatusReady,
			Duration: 2710, Plays: 388, Views: 402, CreatedAt: 1707868800, UpdatedAt: 1707955200,
		},
		{
			ID: "0_m5n6b7v8", Name: "Captioning Workflow", UserID: "carol",
			Description: "Step by step walkthrough of ordering machine captions, reviewing them and publishing the final track.",
			Tags:        "captions,accessibility,training", CategoriesIDs: "103,105", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 615, Plays: 952, Views: 1133, CreatedAt: 1708732800, UpdatedAt: 1708819200,
		},
		{
			ID: "0_h4j5k6l7", Name: "Product Screenshot", UserID: "bob",
			Description: "Hero image used on the landing page.",
			Tags:        "marketing", CategoriesIDs: "104", MediaType: MediaTypeImage, Status: EntryStatusReady,
			Plays: 0, Views: 3400, CreatedAt: 1709596800, UpdatedAt: 1709596800,
		},
		{
			ID: "0_p0o9i8u7", Name: "Live Event Rehearsal", UserID: "alice",
			Description: "Unedited rehearsal recording, pending moderation before publishing.",
			Tags:        "live,internal", CategoriesIDs: "102", MediaType: MediaTypeVideo, Status: EntryStatusModerate,
			Duration: 5400, Plays: 12, Views: 15, CreatedAt: 1710460800, UpdatedAt: 1710547200,
		},
		{
			ID: "0_a1s2d3f4", Name: "Analytics Dashboard Tour", UserID: "dave",
			Description: "Explains plays, loads, drop-off and engagement reports and how to export them.",
			Tags:        "analytics,training", CategoriesIDs: "103", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 530, Plays: 611, Views: 790, CreatedAt: 1711324800, UpdatedAt: 1711411200,
		},
		{
			ID: "0_g5h6j7k8", Name: "Upload In Progress", UserID: "carol",
			Description: "Placeholder entry whose source file is still uploading.",
			Tags:        "", CategoriesIDs: "", MediaType: MediaTypeVideo, Status: EntryStatusPending,
			CreatedAt: 1712188800, UpdatedAt: 1712188800,
		},
		{
			ID: "0_l9k8j7h6", Name: "Customer Story: Healthcare", UserID: "bob",
			Description: "A hospital network shares how it uses video for continuing medical education.",
			Tags:        "customer,healthcare", CategoriesIDs: "104", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 498, Plays: 1044, Views: 1321, CreatedAt: 1713052800, UpdatedAt: 1713139200,
		},
		{
			ID: "0_t6y7u8i9", Name: "Release Notes Walkthrough", UserID: "alice",
			Description: "What changed in the latest release of the player and the upload tools.",
			Tags:        "release,product", CategoriesIDs: "101,103", MediaType: MediaTypeVideo, Status: EntryStatusReady,
			Duration: 356, Plays: 845, Views: 1002, CreatedAt: 1713916800, UpdatedAt: 1714003200,
		},
	}
}

func fixtureCategories() []Category {
	return []Category{
		{ID: 100, Name: "Library", FullName: "Library", Description: "Root of the media library.", EntriesCount: 12, CreatedAt: 1704067200, UpdatedAt: 1714003200},
		{ID: 101, ParentID: 100, Depth: 1, Name: "Getting Started", FullName: "Library>Getting Started", Description: "Onboarding material for new partners.", EntriesCount: 2, CreatedAt: 1704067200, UpdatedAt: 1713916800},
		{ID: 102, ParentID: 100, Depth: 1, Name: "Events", FullName: "Library>Events", Description: "Keynotes, live events and their rehearsals.", EntriesCount: 3, CreatedAt: 1704067200, UpdatedAt: 1710460800},
		{ID: 103, ParentID: 100, Depth: 1, Name: "Training", FullName: "Library>Training", Description: "How-to videos for administrators and editors.", EntriesCount: 4, CreatedAt: 1704067200, UpdatedAt: 1713916800},
		{ID: 104, ParentID: 100, Depth: 1, Name: "Marketing", FullName: "Library>Marketing", Description: "Customer stories and campaign assets.", EntriesCount: 3, CreatedAt: 1704153600, UpdatedAt: 1713052800},
		{ID: 105, ParentID: 103, Depth: 2, Name: "Accessibility", FullName: "Library>Training>Accessibility", Description: "Captions, transcripts and audio description.", EntriesCount: 2, CreatedAt: 1707868800, UpdatedAt: 1708732800},
	}
}

func fixtureUsers() []User {
	return []User{
		{ID: "alice", ScreenName: "Alice Admin", FullName: "Alice Anders", Email: "alice@example.com", Status: 1, IsAdmin: true, CreatedAt: 1704067200, UpdatedAt: 1713916800, LastLoginTime: 1714003200},
		{ID: "bob", ScreenName: "Bob", FullName: "Bob Brennan", Email: "bob@example.com", Status: 1, CreatedAt: 1704153600, UpdatedAt: 1713052800, LastLoginTime: 1713139200},
		{ID: "carol", ScreenName: "carol.c", FullName: "Carol Chen", Email: "carol@example.com", Status: 1, CreatedAt: 1706745600, UpdatedAt: 1712188800, LastLoginTime: 1712275200},
		{ID: "dave", ScreenName: "DaveD", FullName: "Dave Diaz", Email: "dave@example.com", Status: 0, CreatedAt: 1707868800, UpdatedAt: 1711324800},
	}
}
