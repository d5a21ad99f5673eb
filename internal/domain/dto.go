package domain

type MemberRoleType string

const (
	MemberRoleAdmin  MemberRoleType = "admin"
	MemberRoleMember MemberRoleType = "member"
)
