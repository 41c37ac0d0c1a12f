package services

import (
	"noteva/pkg/models"
)

// Fixed routes for builtin navigation targets.
var builtinRoutes = map[string]string{
	models.BuiltinHome:       "/",
	models.BuiltinArchives:   "/archives",
	models.BuiltinCategories: "/categories",
	models.BuiltinTags:       "/tags",
}

// ResolveHref maps a navigation item to its href. Page targets are
// article slugs served under /page/. Unknown builtin targets and unknown
// nav types resolve to "#" so a misconfigured item renders as an inert
// link instead of breaking the menu.
func ResolveHref(n models.NavItem) string {
	switch n.NavType {
	case models.NavBuiltin:
		if href, ok := builtinRoutes[n.Target]; ok {
			return href
		}
		return "#"
	case models.NavPage:
		if n.Target == "" {
			return "#"
		}
		return "/page/" + n.Target
	case models.NavExternal, models.NavCustom:
		if n.Target == "" {
			return "#"
		}
		return n.Target
	}
	return "#"
}

// BuildNavTree assembles the flat item list into a tree, preserving the
// position order the store returns. Items whose parent is missing are
// lifted to top level. Cycles are not guarded against; the data is
// CMS-authored.
func BuildNavTree(items []models.NavItem) []models.NavNode {
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}

	children := make(map[string][]models.NavItem)
	var roots []models.NavItem
	for _, it := range items {
		if it.ParentID == "" || !ids[it.ParentID] {
			roots = append(roots, it)
			continue
		}
		children[it.ParentID] = append(children[it.ParentID], it)
	}

	var build func(items []models.NavItem) []models.NavNode
	build = func(items []models.NavItem) []models.NavNode {
		nodes := make([]models.NavNode, 0, len(items))
		for _, it := range items {
			nodes = append(nodes, models.NavNode{
				NavItem:  it,
				Href:     ResolveHref(it),
				Children: build(children[it.ID]),
			})
		}
		return nodes
	}
	return build(roots)
}

// GetNav loads the stored navigation and resolves it into a tree.
func GetNav() ([]models.NavNode, error) {
	items, err := db.ListNavItems()
	if err != nil {
		return nil, err
	}
	return BuildNavTree(items), nil
}
