package migrations

import "github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"

// Root account created with the schema
const (
	RootEmail    = "kai.hu@infiniflow.org"
	RootNickname = "root"
	RootPassword = "123456"
	RootUID      = 1
)

// SeedTag is a default file classification tag of the root account
type SeedTag struct {
	Name  string
	Regex string
	Color int
	Icon  int
}

// DefaultTags are the tags every fresh database starts with
var DefaultTags = []SeedTag{
	{Name: "视频", Regex: `.*\.(mpg|mpeg|avi|rm|rmvb|mov|wmv|asf|dat|asx|wvx|mpe|mpa)`, Color: 1, Icon: 1},
	{Name: "图片", Regex: `.*\.(png|tif|gif|pcx|tga|exif|fpx|svg|psd|cdr|pcd|dxf|ufo|eps|ai|raw|WMF|webp|avif|apng)`, Color: 2, Icon: 2},
	{Name: "音乐", Regex: `.*\.(WAV|FLAC|APE|ALAC|WavPack|WV|MP3|AAC|Ogg|Vorbis|Opus)`, Color: 3, Icon: 3},
	{Name: "文档", Regex: `.*\.(pdf|doc|ppt|yml|xml|htm|json|csv|txt|ini|xsl|wps|rtf|hlp)`, Color: 3, Icon: 3},
}

// SeedOperations returns the initial rows: the root user, its root folder
// and the default tags. Password is stored as given.
func SeedOperations() ([]schema.Operation, error) {
	var p schema.Plan

	p.Add(schema.Insert(TableUserInfo).
		Columns("email", "nickname", "password").
		Values(RootEmail, RootNickname, RootPassword).
		Build())

	p.Add(schema.Insert(TableDocInfo).
		Columns("uid", "doc_name", "size", "type", "location").
		Values(RootUID, "/", 0, "folder", "").
		Build())

	tags := schema.Insert(TableTagInfo).Columns("uid", "tag_name", "regx", "color", "icon")
	for _, tag := range DefaultTags {
		tags.Values(RootUID, tag.Name, tag.Regex, tag.Color, tag.Icon)
	}
	p.Add(tags.Build())

	return p.Operations()
}
