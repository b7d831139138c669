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

package guidmap

// knownFolders lists KNOWNFOLDERID values by their FOLDERID_ name.
var knownFolders = map[string]string{ // nolint:gochecknoglobals
	"{0139D44E-6AFE-49F2-8690-3DAFCAE6FFB8}": "CommonPrograms",
	"{0762D272-C50A-4BB0-A382-697DCD729B80}": "UserProfiles",
	"{0AC0837C-BBF8-452A-850D-79D08E667CA7}": "Computer",
	"{1777F761-68AD-4D8A-87BD-30B759FA33DD}": "Favorites",
	"{18989B1D-99B5-455B-841C-AB7C74E4DDFC}": "Videos",
	"{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}": "System",
	"{2B0F765D-C0E9-4171-908E-08A611B84FF6}": "Cookies",
	"{2C36C0AA-5812-4B87-BFD0-4CD0DFB19B39}": "OriginalImages",
	"{33E28130-4E1E-4676-835A-98395C3BC3BB}": "Pictures",
	"{352481E8-33BE-4251-BA85-6007CAEDCF9D}": "InternetCache",
	"{374DE290-123F-4565-9164-39C4925E467B}": "Downloads",
	"{3B193882-D3AD-4EAB-965A-69829D1FB59F}": "SavedPictures",
	"{3D644C9B-1FB8-4F30-9B45-F670235F79C0}": "PublicDownloads",
	"{3EB685DB-65F9-4CF6-A03A-E3EF65729F3D}": "RoamingAppData",
	"{4BD8D571-6D19-48D3-BE97-422220080E43}": "Music",
	"{4C5C32FF-BB9D-43B0-B5B4-2D72E54EAAA4}": "SavedGames",
	"{56784854-C6CB-462B-8169-88E350ACB882}": "Contacts",
	"{5CD7AEE2-2219-4A67-B85D-6C9CE15660CB}": "UserProgramFiles",
	"{5E6C858F-0E22-4760-9AFE-EA3317B67173}": "Profile",
	"{625B53C3-AB48-4EC1-BA1F-A1EF4146FC19}": "StartMenu",
	"{62AB5D82-FDC1-4DC3-A9DD-070D1D495D97}": "ProgramData",
	"{6365D5A7-0F0D-45E5-87F6-0DA56B6A4F7D}": "ProgramFilesCommonX64",
	"{69D2CF90-FC33-4FB7-9A0C-EBB0F0FCB43C}": "PhotoAlbums",
	"{6D809377-6AF0-444B-8957-A3773F02200E}": "ProgramFilesX64",
	"{724EF170-A42D-4FEF-9F26-B60E846FBA4F}": "AdminTools",
	"{7C5A40EF-A0FB-4BFC-874A-C0F2E0B9FA8E}": "ProgramFilesX86",
	"{7D1D3A04-DEBB-4115-95CF-2F29DA2920DA}": "SavedSearches",
	"{82A5EA35-D9CD-47C5-9629-E15D2F714E6E}": "CommonStartup",
	"{859EAD94-2E85-48AD-A71A-0969CB56A6CD}": "SampleVideos",
	"{8983036C-27C0-404B-8F08-102D10DCFD74}": "SendTo",
	"{8AD10C31-2ADB-4296-A8F7-E4701232C972}": "ResourceDir",
	"{905E63B6-C1BF-494E-B29C-65B732D3D21A}": "ProgramFiles",
	"{9274BD8D-CFD1-41C3-B35E-B13F55A758F4}": "PrintHood",
	"{9E3995AB-1F9C-4F13-B827-48B24B6C7174}": "UserPinned",
	"{A302545D-DEFF-464B-ABE8-61C8648D939B}": "UsersLibraries",
	"{A305CE99-F527-492B-8B1A-7E76FA98D6E4}": "AppUpdates",
	"{A3918781-E5F2-4890-B3D9-A7E54332328C}": "ApplicationShortcuts",
	"{A4115719-D62E-491D-AA7C-E74B8BE3B067}": "CommonStartMenu",
	"{A520A1A4-1780-4FF6-BD18-167343C5AF16}": "LocalAppDataLow",
	"{A63293E8-664E-48DB-A079-DF759E0509F7}": "Templates",
	"{A77F5D77-2E2B-44C3-A6A2-ABA601054A51}": "Programs",
	"{AB5FB87B-7CE2-4F83-915D-550846C9537B}": "CameraRoll",
	"{AE50C081-EBD2-438A-8655-8A092E34987A}": "Recent",
	"{B250C668-F57D-4EE1-A63C-290EE7D1AA1F}": "SampleMusic",
	"{B4BFCC3A-DB2C-424C-B029-7FE99A87C641}": "Desktop",
	"{B7534046-3ECB-4C18-BE4E-64CD4CB7D6AC}": "RecycleBin",
	"{B97D20BB-F46A-4C97-BA10-5E3608430854}": "Startup",
	"{BCBD3057-CA5C-4622-B42D-BC56DB0AE516}": "UserProgramFilesCommon",
	"{BFB9D5E0-C6A9-404C-B2B2-AE6DB6AF4968}": "Links",
	"{C4900540-2379-4C75-844B-64E6FAF8716B}": "SamplePictures",
	"{C4AA340D-F20F-4863-AFEF-F87EF2E6BA25}": "PublicDesktop",
	"{C5ABBF53-E17F-4121-8900-86626FC2C973}": "NetHood",
	"{D0384E7D-BAC3-4797-8F14-CBA229B392B5}": "CommonAdminTools",
	"{D65231B0-B2F1-4857-A4CE-A8E7C6EA7D27}": "SystemX86",
	"{D9DC8A3B-B784-432E-A781-5A1130A75963}": "History",
	"{DE61D971-5EBC-4F02-A3A9-6C82895E5C04}": "AddNewPrograms",
	"{DE92C1C7-837F-4F69-A3BB-86E631204A23}": "Playlists",
	"{DE974D24-D9C6-4D3E-BF91-F4455120B917}": "ProgramFilesCommonX86",
	"{DFDF76A2-C82A-4D63-906A-5644AC457385}": "Public",
	"{ED4824AF-DCE4-45A8-81E2-FC7965083634}": "PublicDocuments",
	"{F1B32785-6FBA-4FCF-9D55-7B8E7F157091}": "LocalAppData",
	"{F38BF404-1D43-42F2-9305-67DE0B28FC23}": "Windows",
	"{F3CE0F7C-4901-4ACC-8648-D5D44B04EF8F}": "UsersFiles",
	"{F7F1ED05-9F6D-47A2-AAAE-29D317C6F066}": "ProgramFilesCommon",
	"{FDD39AD0-238F-46AF-ADB4-6C85480369C7}": "Documents",
}
