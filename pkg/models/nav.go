package models

// Navigation item types. Exactly one applies per item and decides how the
// href is resolved.
const (
	NavBuiltin  = "builtin"
	NavPage     = "page"
	NavExternal = "external"
	NavCustom   = "custom"
)

// Builtin targets resolve to fixed site routes.
const (
	BuiltinHome       = "home"
	BuiltinArchives   = "archives"
	BuiltinCategories = "categories"
	BuiltinTags       = "tags"
)

// NavItem is one entry in the site navigation. ParentID is empty for top
// level items; Target holds the builtin name, page slug or external URL
// depending on NavType. Cycles in ParentID are not guarded against.
type NavItem struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Title    string `json:"title" binding:"required"`
	NavType  string `json:"nav_type" binding:"required"`
	Target   string `json:"target"`
	Position int    `json:"position"`
}

// NavNode is a NavItem with its resolved href and children, ready for
// template rendering.
type NavNode struct {
	NavItem
	Href     string    `json:"href"`
	Children []NavNode `json:"children,omitempty"`
}
