/*
Package retry provides a bounded fixed-delay retry policy for
external command launches.

The Policy is explicit about everything the caller cares about: total
attempt budget, delay between attempts, and which errors qualify for
another try. The final attempt is unguarded so a persistent failure
always reaches the caller as the real error rather than a retry
wrapper.
*/
package retry
