//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "time"

// Post - one item from a feed: immutable once written
type Post struct {
	ID       string
	Created  time.Time
	Text     string
	Language string
}
