// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster imports uploaded Excel rosters into the attendance worksheet.

An upload produces one cohort: every employee row is written under a single
generated session id of the form

	{session name, spaces -> underscores}_{session date}_{XXXX}

where XXXX is a random 4-character uppercase alphanumeric suffix. The id is
the external handle for all later attendance and feedback operations on the
cohort.
*/
package roster
