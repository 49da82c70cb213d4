// Package lists lays out ordered collections of pre-rendered items as
// separated lists: on one line when the horizontal budget allows it, or one
// item per line at a fixed indent when it does not. The choice is
// deterministic; callers decide what each item looks like and what budget
// applies.
package lists
