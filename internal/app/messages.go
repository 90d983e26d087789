// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// socialix handlers.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of successful responses. Clients match on some of them,
// so wording changes are API changes.
package app

const (
	// MsgSignInWelcome prefixes the user name after a successful sign-up.
	MsgSignInWelcome = "User Sign-in Successfully ! Welcome "

	// MsgLoginWelcome prefixes the user name after a successful login.
	MsgLoginWelcome = "User Login Successfully ! Welcome "

	MsgLogout = "User Logout Successfully !"

	MsgUserDetailsFetched = "User Details Fetched !"
	MsgUsersSearched      = "Search User Successfully !"
	MsgAllUsersFetched    = "All Users Fetched !"

	// MsgProfileUpdated is returned once every profile mutation has completed.
	MsgProfileUpdated = "Profile Updated Successfully !"
)
