/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

// Package wxtimeline extracts and normalizes Windows Timeline activities from
// an ActivitiesCache.db.
//
// The activities cache
//
// Windows stores the timeline of a user profile in a sqlite database below
//     C:\Users\<profile>\AppData\Local\ConnectedDevicesPlatform\<account>\ActivitiesCache.db
// Three of its tables are processed:
//     - ActivityOperation holds pending operations that have not been synced yet.
//     - Activity_PackageId maps activities to the packages or executables that created them.
//     - Activity holds the activities, e.g. opened files, focused applications and clipboard entries.
//
// Normalization
//
// Every row is turned into an Entry: the application identity list in AppId
// is reduced to one executable, known folder GUIDs are replaced by their
// names, payload blobs are decoded and epoch timestamps become UTC times.
// Tables are processed independently, a missing table or an undecodable row
// is reported in the TableResult of its table only.
//
// Usage
//     store, err := wxtimeline.Open("ActivitiesCache.db")
//     if err != nil {
//         return err
//     }
//     defer store.Close()
//
//     timeline := wxtimeline.NewNormalizer(wxtimeline.Options{}).Run(store)
//     for _, activity := range timeline.Activities {
//         fmt.Println(activity)
//     }
package wxtimeline
