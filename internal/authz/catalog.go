// Package authz holds the permission vocabulary and the request-time
// authorization decision logic. The permission check inspects only the
// permission codes carried by the authenticated principal; it never touches
// the database.
package authz

// Permission actions used throughout the system
const (
	ActionRead     = "read"
	ActionWrite    = "write"
	ActionDelete   = "delete"
	ActionModerate = "moderate"
	ActionUpload   = "upload"
	ActionManage   = "manage"
	ActionAdmin    = "admin"
	ActionConfig   = "config"
)

// Permission resources used throughout the system
const (
	ResourceVenues          = "venues"
	ResourceSpecials        = "specials"
	ResourceContent         = "content"
	ResourcePosts           = "posts"
	ResourceMedia           = "media"
	ResourceTags            = "tags"
	ResourceVibes           = "vibes"
	ResourceVenueCategories = "venue-categories"
	ResourceAnalytics       = "analytics"
	ResourceAnalyticsGlobal = "analytics-global"
	ResourceNotifications   = "notifications"
	ResourceFollows         = "follows"
	ResourceVenueUsers      = "venue-users"
	ResourceSystem          = "system"
)

// Permission categories, used for display grouping only
const (
	CategoryVenue         = "Venue"
	CategorySpecial       = "Special"
	CategoryContent       = "Content"
	CategoryPost          = "Post"
	CategoryMedia         = "Media"
	CategoryTag           = "Tag"
	CategoryVibe          = "Vibe"
	CategoryVenueCategory = "VenueCategory"
	CategoryAnalytics     = "Analytics"
	CategoryNotification  = "Notification"
	CategoryFollow        = "Follow"
	CategoryVenueUser     = "VenueUser"
	CategorySystem        = "System"
)

// Well-known permission codes
const (
	PermReadVenues            = "read:venues"
	PermWriteVenues           = "write:venues"
	PermDeleteVenues          = "delete:venues"
	PermWriteSpecials         = "write:specials"
	PermDeleteSpecials        = "delete:specials"
	PermReadContent           = "read:content"
	PermWriteContent          = "write:content"
	PermDeleteContent         = "delete:content"
	PermModerateContent       = "moderate:content"
	PermWritePosts            = "write:posts"
	PermDeletePosts           = "delete:posts"
	PermModeratePosts         = "moderate:posts"
	PermUploadMedia           = "upload:media"
	PermDeleteMedia           = "delete:media"
	PermModerateMedia         = "moderate:media"
	PermReadTags              = "read:tags"
	PermWriteTags             = "write:tags"
	PermDeleteTags            = "delete:tags"
	PermModerateTags          = "moderate:tags"
	PermReadVibes             = "read:vibes"
	PermWriteVibes            = "write:vibes"
	PermModerateVibes         = "moderate:vibes"
	PermReadVenueCategories   = "read:venue-categories"
	PermWriteVenueCategories  = "write:venue-categories"
	PermDeleteVenueCategories = "delete:venue-categories"
	PermReadAnalytics         = "read:analytics"
	PermReadAnalyticsGlobal   = "read:analytics-global"
	PermReadNotifications     = "read:notifications"
	PermWriteNotifications    = "write:notifications"
	PermManageFollows         = "manage:follows"
	PermReadVenueUsers        = "read:venue-users"
	PermWriteVenueUsers       = "write:venue-users"
	PermDeleteVenueUsers      = "delete:venue-users"
	PermAdminSystem           = "admin:system"
	PermConfigSystem          = "config:system"
)

// Built-in role names
const (
	RoleAdministrator  = "administrator"
	RoleContentManager = "content-manager"
	RoleVenueOwner     = "venue-owner"
	RoleVenueManager   = "venue-manager"
)

// PermissionDef describes one entry in the permission catalog
type PermissionDef struct {
	ID          int
	Name        string
	DisplayName string
	Description string
	Category    string
	Action      string
	Resource    string
	SortOrder   int
}

// RoleDef describes one built-in role
type RoleDef struct {
	ID          int
	Name        string
	DisplayName string
	Description string
	SortOrder   int
}

// permissionCatalog is the fixed permission vocabulary (ids 1-35).
// IDs and names are part of the persisted schema contract and must not change.
var permissionCatalog = []PermissionDef{
	// Venue management
	{ID: 1, Name: PermReadVenues, DisplayName: "Read Venues", Description: "Query and view venue information", Category: CategoryVenue, Action: ActionRead, Resource: ResourceVenues, SortOrder: 1},
	{ID: 2, Name: PermWriteVenues, DisplayName: "Write Venues", Description: "Create and update venue information", Category: CategoryVenue, Action: ActionWrite, Resource: ResourceVenues, SortOrder: 2},
	{ID: 3, Name: PermDeleteVenues, DisplayName: "Delete Venues", Description: "Delete venues from the system", Category: CategoryVenue, Action: ActionDelete, Resource: ResourceVenues, SortOrder: 3},

	// Special management
	{ID: 4, Name: PermWriteSpecials, DisplayName: "Write Specials", Description: "Create and update special offers", Category: CategorySpecial, Action: ActionWrite, Resource: ResourceSpecials, SortOrder: 4},
	{ID: 5, Name: PermDeleteSpecials, DisplayName: "Delete Specials", Description: "Delete special offers", Category: CategorySpecial, Action: ActionDelete, Resource: ResourceSpecials, SortOrder: 5},

	// Content management
	{ID: 6, Name: PermReadContent, DisplayName: "Read Content", Description: "Read all user-generated content and posts", Category: CategoryContent, Action: ActionRead, Resource: ResourceContent, SortOrder: 6},
	{ID: 7, Name: PermWriteContent, DisplayName: "Write Content", Description: "Create and update content across all venues", Category: CategoryContent, Action: ActionWrite, Resource: ResourceContent, SortOrder: 7},
	{ID: 8, Name: PermDeleteContent, DisplayName: "Delete Content", Description: "Delete inappropriate or violating content", Category: CategoryContent, Action: ActionDelete, Resource: ResourceContent, SortOrder: 8},
	{ID: 9, Name: PermModerateContent, DisplayName: "Moderate Content", Description: "Moderate user posts and venue content", Category: CategoryContent, Action: ActionModerate, Resource: ResourceContent, SortOrder: 9},

	// Post management
	{ID: 10, Name: PermWritePosts, DisplayName: "Write Posts", Description: "Create posts in venue activity threads", Category: CategoryPost, Action: ActionWrite, Resource: ResourcePosts, SortOrder: 10},
	{ID: 11, Name: PermDeletePosts, DisplayName: "Delete Posts", Description: "Delete posts from activity threads", Category: CategoryPost, Action: ActionDelete, Resource: ResourcePosts, SortOrder: 11},
	{ID: 12, Name: PermModeratePosts, DisplayName: "Moderate Posts", Description: "Moderate posts and manage thread activity", Category: CategoryPost, Action: ActionModerate, Resource: ResourcePosts, SortOrder: 12},

	// Media management
	{ID: 13, Name: PermUploadMedia, DisplayName: "Upload Media", Description: "Upload photos and videos to venue profiles and posts", Category: CategoryMedia, Action: ActionUpload, Resource: ResourceMedia, SortOrder: 13},
	{ID: 14, Name: PermDeleteMedia, DisplayName: "Delete Media", Description: "Delete media content", Category: CategoryMedia, Action: ActionDelete, Resource: ResourceMedia, SortOrder: 14},
	{ID: 15, Name: PermModerateMedia, DisplayName: "Moderate Media", Description: "Moderate media content for appropriateness", Category: CategoryMedia, Action: ActionModerate, Resource: ResourceMedia, SortOrder: 15},

	// Tag management
	{ID: 16, Name: PermReadTags, DisplayName: "Read Tags", Description: "Read tag definitions and assignments", Category: CategoryTag, Action: ActionRead, Resource: ResourceTags, SortOrder: 16},
	{ID: 17, Name: PermWriteTags, DisplayName: "Write Tags", Description: "Create and update tags for specials", Category: CategoryTag, Action: ActionWrite, Resource: ResourceTags, SortOrder: 17},
	{ID: 18, Name: PermDeleteTags, DisplayName: "Delete Tags", Description: "Delete or consolidate tags", Category: CategoryTag, Action: ActionDelete, Resource: ResourceTags, SortOrder: 18},
	{ID: 19, Name: PermModerateTags, DisplayName: "Moderate Tags", Description: "Feature, hide, or manage tag usage across platform", Category: CategoryTag, Action: ActionModerate, Resource: ResourceTags, SortOrder: 19},

	// Vibe management
	{ID: 20, Name: PermReadVibes, DisplayName: "Read Vibes", Description: "Read vibe definitions and current venue vibes", Category: CategoryVibe, Action: ActionRead, Resource: ResourceVibes, SortOrder: 20},
	{ID: 21, Name: PermWriteVibes, DisplayName: "Write Vibes", Description: "Create vibes in user posts", Category: CategoryVibe, Action: ActionWrite, Resource: ResourceVibes, SortOrder: 21},
	{ID: 22, Name: PermModerateVibes, DisplayName: "Moderate Vibes", Description: "Moderate vibe content for appropriateness", Category: CategoryVibe, Action: ActionModerate, Resource: ResourceVibes, SortOrder: 22},

	// Venue category management
	{ID: 23, Name: PermReadVenueCategories, DisplayName: "Read Venue Categories", Description: "Read available venue category classifications", Category: CategoryVenueCategory, Action: ActionRead, Resource: ResourceVenueCategories, SortOrder: 23},
	{ID: 24, Name: PermWriteVenueCategories, DisplayName: "Write Venue Categories", Description: "Create and update venue category definitions", Category: CategoryVenueCategory, Action: ActionWrite, Resource: ResourceVenueCategories, SortOrder: 24},
	{ID: 25, Name: PermDeleteVenueCategories, DisplayName: "Delete Venue Categories", Description: "Remove venue categories from the system", Category: CategoryVenueCategory, Action: ActionDelete, Resource: ResourceVenueCategories, SortOrder: 25},

	// Analytics
	{ID: 26, Name: PermReadAnalytics, DisplayName: "Read Analytics", Description: "Access venue analytics and performance metrics", Category: CategoryAnalytics, Action: ActionRead, Resource: ResourceAnalytics, SortOrder: 26},
	{ID: 27, Name: PermReadAnalyticsGlobal, DisplayName: "Global Analytics", Description: "Access global platform analytics and insights", Category: CategoryAnalytics, Action: ActionRead, Resource: ResourceAnalyticsGlobal, SortOrder: 27},

	// Notification management
	{ID: 28, Name: PermReadNotifications, DisplayName: "Read Notifications", Description: "Read user notifications", Category: CategoryNotification, Action: ActionRead, Resource: ResourceNotifications, SortOrder: 28},
	{ID: 29, Name: PermWriteNotifications, DisplayName: "Write Notifications", Description: "Send notifications to users", Category: CategoryNotification, Action: ActionWrite, Resource: ResourceNotifications, SortOrder: 29},
	{ID: 30, Name: PermManageFollows, DisplayName: "Manage Follows", Description: "Follow/unfollow tags and venues for notifications", Category: CategoryFollow, Action: ActionManage, Resource: ResourceFollows, SortOrder: 30},

	// Venue user management
	{ID: 31, Name: PermReadVenueUsers, DisplayName: "Read Venue Users", Description: "Read venue user assignments and permissions", Category: CategoryVenueUser, Action: ActionRead, Resource: ResourceVenueUsers, SortOrder: 31},
	{ID: 32, Name: PermWriteVenueUsers, DisplayName: "Write Venue Users", Description: "Assign users to venues and manage venue-specific permissions", Category: CategoryVenueUser, Action: ActionWrite, Resource: ResourceVenueUsers, SortOrder: 32},
	{ID: 33, Name: PermDeleteVenueUsers, DisplayName: "Delete Venue Users", Description: "Remove users from venue assignments", Category: CategoryVenueUser, Action: ActionDelete, Resource: ResourceVenueUsers, SortOrder: 33},

	// System administration
	{ID: 34, Name: PermAdminSystem, DisplayName: "System Admin", Description: "Full system administration access", Category: CategorySystem, Action: ActionAdmin, Resource: ResourceSystem, SortOrder: 34},
	{ID: 35, Name: PermConfigSystem, DisplayName: "System Config", Description: "Modify system configuration and settings", Category: CategorySystem, Action: ActionConfig, Resource: ResourceSystem, SortOrder: 35},
}

// roleCatalog is the fixed set of built-in roles (ids 1-4)
var roleCatalog = []RoleDef{
	{ID: 1, Name: RoleAdministrator, DisplayName: "Administrator", Description: "Full global application administration access with complete system control", SortOrder: 1},
	{ID: 2, Name: RoleContentManager, DisplayName: "Content Manager", Description: "Manage all venues, content, and platform-wide moderation", SortOrder: 2},
	{ID: 3, Name: RoleVenueOwner, DisplayName: "Venue Owner", Description: "Full management access for assigned venues including user management", SortOrder: 3},
	{ID: 4, Name: RoleVenueManager, DisplayName: "Venue Manager", Description: "Manage specials and content for assigned venues", SortOrder: 4},
}

// rolePermissionMatrix maps role ID to the permission IDs it grants.
// The assignments for venue-owner and venue-manager are venue-scoped at
// claims-issuance time; the matrix itself is venue-agnostic.
var rolePermissionMatrix = map[int][]int{
	1: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35},
	2: {1, 2, 4, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 19, 20, 22, 23, 26},
	3: {1, 2, 3, 4, 5, 6, 7, 10, 13, 16, 17, 20, 21, 23, 26, 28, 29, 30, 31, 32, 33},
	4: {1, 4, 5, 6, 7, 10, 13, 16, 17, 20, 21, 23, 26, 28},
}

var permissionsByID = func() map[int]PermissionDef {
	m := make(map[int]PermissionDef, len(permissionCatalog))
	for _, p := range permissionCatalog {
		m[p.ID] = p
	}
	return m
}()

var permissionsByName = func() map[string]PermissionDef {
	m := make(map[string]PermissionDef, len(permissionCatalog))
	for _, p := range permissionCatalog {
		m[p.Name] = p
	}
	return m
}()

var rolesByName = func() map[string]RoleDef {
	m := make(map[string]RoleDef, len(roleCatalog))
	for _, r := range roleCatalog {
		m[r.Name] = r
	}
	return m
}()

// Permissions returns the full permission catalog in sort order
func Permissions() []PermissionDef {
	out := make([]PermissionDef, len(permissionCatalog))
	copy(out, permissionCatalog)
	return out
}

// Roles returns the built-in roles in sort order
func Roles() []RoleDef {
	out := make([]RoleDef, len(roleCatalog))
	copy(out, roleCatalog)
	return out
}

// LookupPermission returns the catalog entry for a permission code
func LookupPermission(name string) (PermissionDef, bool) {
	p, ok := permissionsByName[name]
	return p, ok
}

// LookupRole returns the catalog entry for a role name
func LookupRole(name string) (RoleDef, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

// RolePermissions returns the permission codes granted by a role ID,
// in catalog order. Unknown role IDs yield an empty slice.
func RolePermissions(roleID int) []string {
	ids := rolePermissionMatrix[roleID]
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := permissionsByID[id]; ok {
			out = append(out, p.Name)
		}
	}
	return out
}

// RolePermissionIDs returns the raw role->permission ID assignments for a
// role ID, used when seeding the role_permissions table.
func RolePermissionIDs(roleID int) []int {
	ids := rolePermissionMatrix[roleID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
