package device

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode is an Android input key identifier as defined by android.view.KeyEvent.
// See https://android.googlesource.com/platform/frameworks/base/+/master/core/java/android/view/KeyEvent.java
type KeyCode uint32

// Key code constants.
const (
	KeyCodeUnknown                   KeyCode = 0   // Unknown key code.
	KeyCodeSoftLeft                  KeyCode = 1   // Soft Left key.
	KeyCodeSoftRight                 KeyCode = 2   // Soft Right key.
	KeyCodeHome                      KeyCode = 3   // Home key.
	KeyCodeBack                      KeyCode = 4   // Back key.
	KeyCodeCall                      KeyCode = 5   // Call key.
	KeyCodeEndCall                   KeyCode = 6   // End Call key.
	KeyCode0                         KeyCode = 7   // '0' key.
	KeyCode1                         KeyCode = 8   // '1' key.
	KeyCode2                         KeyCode = 9   // '2' key.
	KeyCode3                         KeyCode = 10  // '3' key.
	KeyCode4                         KeyCode = 11  // '4' key.
	KeyCode5                         KeyCode = 12  // '5' key.
	KeyCode6                         KeyCode = 13  // '6' key.
	KeyCode7                         KeyCode = 14  // '7' key.
	KeyCode8                         KeyCode = 15  // '8' key.
	KeyCode9                         KeyCode = 16  // '9' key.
	KeyCodeStar                      KeyCode = 17  // '*' key.
	KeyCodePound                     KeyCode = 18  // '#' key.
	KeyCodeDpadUp                    KeyCode = 19  // Directional Pad Up key.
	KeyCodeDpadDown                  KeyCode = 20  // Directional Pad Down key.
	KeyCodeDpadLeft                  KeyCode = 21  // Directional Pad Left key.
	KeyCodeDpadRight                 KeyCode = 22  // Directional Pad Right key.
	KeyCodeDpadCenter                KeyCode = 23  // Directional Pad Center key.
	KeyCodeVolumeUp                  KeyCode = 24  // Volume Up key.
	KeyCodeVolumeDown                KeyCode = 25  // Volume Down key.
	KeyCodePower                     KeyCode = 26  // Power key.
	KeyCodeCamera                    KeyCode = 27  // Camera key.
	KeyCodeClear                     KeyCode = 28  // Clear key.
	KeyCodeA                         KeyCode = 29  // 'A' key.
	KeyCodeB                         KeyCode = 30  // 'B' key.
	KeyCodeC                         KeyCode = 31  // 'C' key.
	KeyCodeD                         KeyCode = 32  // 'D' key.
	KeyCodeE                         KeyCode = 33  // 'E' key.
	KeyCodeF                         KeyCode = 34  // 'F' key.
	KeyCodeG                         KeyCode = 35  // 'G' key.
	KeyCodeH                         KeyCode = 36  // 'H' key.
	KeyCodeI                         KeyCode = 37  // 'I' key.
	KeyCodeJ                         KeyCode = 38  // 'J' key.
	KeyCodeK                         KeyCode = 39  // 'K' key.
	KeyCodeL                         KeyCode = 40  // 'L' key.
	KeyCodeM                         KeyCode = 41  // 'M' key.
	KeyCodeN                         KeyCode = 42  // 'N' key.
	KeyCodeO                         KeyCode = 43  // 'O' key.
	KeyCodeP                         KeyCode = 44  // 'P' key.
	KeyCodeQ                         KeyCode = 45  // 'Q' key.
	KeyCodeR                         KeyCode = 46  // 'R' key.
	KeyCodeS                         KeyCode = 47  // 'S' key.
	KeyCodeT                         KeyCode = 48  // 'T' key.
	KeyCodeU                         KeyCode = 49  // 'U' key.
	KeyCodeV                         KeyCode = 50  // 'V' key.
	KeyCodeW                         KeyCode = 51  // 'W' key.
	KeyCodeX                         KeyCode = 52  // 'X' key.
	KeyCodeY                         KeyCode = 53  // 'Y' key.
	KeyCodeZ                         KeyCode = 54  // 'Z' key.
	KeyCodeComma                     KeyCode = 55  // ',' key.
	KeyCodePeriod                    KeyCode = 56  // '.' key.
	KeyCodeAltLeft                   KeyCode = 57  // Left Alt modifier key.
	KeyCodeAltRight                  KeyCode = 58  // Right Alt modifier key.
	KeyCodeShiftLeft                 KeyCode = 59  // Left Shift modifier key.
	KeyCodeShiftRight                KeyCode = 60  // Right Shift modifier key.
	KeyCodeTab                       KeyCode = 61  // Tab key.
	KeyCodeSpace                     KeyCode = 62  // Space key.
	KeyCodeSym                       KeyCode = 63  // Symbol modifier key.
	KeyCodeExplorer                  KeyCode = 64  // Explorer special function key.
	KeyCodeEnvelope                  KeyCode = 65  // Envelope special function key.
	KeyCodeEnter                     KeyCode = 66  // Enter key.
	KeyCodeDel                       KeyCode = 67  // Backspace key.
	KeyCodeGrave                     KeyCode = 68  // '`' (backtick) key.
	KeyCodeMinus                     KeyCode = 69  // '-'.
	KeyCodeEquals                    KeyCode = 70  // '=' key.
	KeyCodeLeftBracket               KeyCode = 71  // '[' key.
	KeyCodeRightBracket              KeyCode = 72  // ']' key.
	KeyCodeBackslash                 KeyCode = 73  // '\' key.
	KeyCodeSemicolon                 KeyCode = 74  // ',' key.
	KeyCodeApostrophe                KeyCode = 75  // ''' (apostrophe) key.
	KeyCodeSlash                     KeyCode = 76  // '/' key.
	KeyCodeAt                        KeyCode = 77  // '@' key.
	KeyCodeNum                       KeyCode = 78  // Number modifier key.
	KeyCodeHeadsetHook               KeyCode = 79  // Headset Hook key.
	KeyCodeFocus                     KeyCode = 80  // Camera Focus key.
	KeyCodePlus                      KeyCode = 81  // '+' key.
	KeyCodeMenu                      KeyCode = 82  // Menu key.
	KeyCodeNotification              KeyCode = 83  // Notification key.
	KeyCodeSearch                    KeyCode = 84  // Search key.
	KeyCodeMediaPlayPause            KeyCode = 85  // Play/Pause media key.
	KeyCodeMediaStop                 KeyCode = 86  // Stop media key.
	KeyCodeMediaNext                 KeyCode = 87  // Play Next media key.
	KeyCodeMediaPrevious             KeyCode = 88  // Play Previous media key.
	KeyCodeMediaRewind               KeyCode = 89  // Rewind media key.
	KeyCodeMediaFastForward          KeyCode = 90  // Fast Forward media key.
	KeyCodeMute                      KeyCode = 91  // Mute key.
	KeyCodePageUp                    KeyCode = 92  // Page Up key.
	KeyCodePageDown                  KeyCode = 93  // Page Down key.
	KeyCodePictSymbols               KeyCode = 94  // Picture Symbols modifier key.
	KeyCodeSwitchCharset             KeyCode = 95  // Switch Charset modifier key.
	KeyCodeButtonA                   KeyCode = 96  // A Button key.
	KeyCodeButtonB                   KeyCode = 97  // B Button key.
	KeyCodeButtonC                   KeyCode = 98  // C Button key.
	KeyCodeButtonX                   KeyCode = 99  // X Button key.
	KeyCodeButtonY                   KeyCode = 100 // Y Button key.
	KeyCodeButtonZ                   KeyCode = 101 // Z Button key.
	KeyCodeButtonL1                  KeyCode = 102 // L1 Button key.
	KeyCodeButtonR1                  KeyCode = 103 // R1 Button key.
	KeyCodeButtonL2                  KeyCode = 104 // L2 Button key.
	KeyCodeButtonR2                  KeyCode = 105 // R2 Button key.
	KeyCodeButtonThumbL              KeyCode = 106 // Left Thumb Button key.
	KeyCodeButtonThumbR              KeyCode = 107 // Right Thumb Button key.
	KeyCodeButtonStart               KeyCode = 108 // Start Button key.
	KeyCodeButtonSelect              KeyCode = 109 // Select Button key.
	KeyCodeButtonMode                KeyCode = 110 // Mode Button key.
	KeyCodeEscape                    KeyCode = 111 // Escape key.
	KeyCodeForwardDel                KeyCode = 112 // Forward Delete key.
	KeyCodeCtrlLeft                  KeyCode = 113 // Left Control modifier key.
	KeyCodeCtrlRight                 KeyCode = 114 // Right Control modifier key.
	KeyCodeCapsLock                  KeyCode = 115 // Caps Lock key.
	KeyCodeScrollLock                KeyCode = 116 // Scroll Lock key.
	KeyCodeMetaLeft                  KeyCode = 117 // Left Meta modifier key.
	KeyCodeMetaRight                 KeyCode = 118 // Right Meta modifier key.
	KeyCodeFunction                  KeyCode = 119 // Function modifier key.
	KeyCodeSysRq                     KeyCode = 120 // System Request / Print Screen key.
	KeyCodeBreak                     KeyCode = 121 // Break / Pause key.
	KeyCodeMoveHome                  KeyCode = 122 // Home Movement key.
	KeyCodeMoveEnd                   KeyCode = 123 // End Movement key.
	KeyCodeInsert                    KeyCode = 124 // Insert key.
	KeyCodeForward                   KeyCode = 125 // Forward key.
	KeyCodeMediaPlay                 KeyCode = 126 // Play media key.
	KeyCodeMediaPause                KeyCode = 127 // Pause media key.
	KeyCodeMediaClose                KeyCode = 128 // Close media key.
	KeyCodeMediaEject                KeyCode = 129 // Eject media key.
	KeyCodeMediaRecord               KeyCode = 130 // Record media key.
	KeyCodeF1                        KeyCode = 131 // F1 key.
	KeyCodeF2                        KeyCode = 132 // F2 key.
	KeyCodeF3                        KeyCode = 133 // F3 key.
	KeyCodeF4                        KeyCode = 134 // F4 key.
	KeyCodeF5                        KeyCode = 135 // F5 key.
	KeyCodeF6                        KeyCode = 136 // F6 key.
	KeyCodeF7                        KeyCode = 137 // F7 key.
	KeyCodeF8                        KeyCode = 138 // F8 key.
	KeyCodeF9                        KeyCode = 139 // F9 key.
	KeyCodeF10                       KeyCode = 140 // F10 key.
	KeyCodeF11                       KeyCode = 141 // F11 key.
	KeyCodeF12                       KeyCode = 142 // F12 key.
	KeyCodeNumLock                   KeyCode = 143 // Num Lock key.
	KeyCodeNumpad0                   KeyCode = 144 // Numeric keypad '0' key.
	KeyCodeNumpad1                   KeyCode = 145 // Numeric keypad '1' key.
	KeyCodeNumpad2                   KeyCode = 146 // Numeric keypad '2' key.
	KeyCodeNumpad3                   KeyCode = 147 // Numeric keypad '3' key.
	KeyCodeNumpad4                   KeyCode = 148 // Numeric keypad '4' key.
	KeyCodeNumpad5                   KeyCode = 149 // Numeric keypad '5' key.
	KeyCodeNumpad6                   KeyCode = 150 // Numeric keypad '6' key.
	KeyCodeNumpad7                   KeyCode = 151 // Numeric keypad '7' key.
	KeyCodeNumpad8                   KeyCode = 152 // Numeric keypad '8' key.
	KeyCodeNumpad9                   KeyCode = 153 // Numeric keypad '9' key.
	KeyCodeNumpadDivide              KeyCode = 154 // Numeric keypad '/' key (for division).
	KeyCodeNumpadMultiply            KeyCode = 155 // Numeric keypad '*' key (for multiplication).
	KeyCodeNumpadSubtract            KeyCode = 156 // Numeric keypad '-' key (for subtraction).
	KeyCodeNumpadAdd                 KeyCode = 157 // Numeric keypad '+' key (for addition).
	KeyCodeNumpadDot                 KeyCode = 158 // Numeric keypad '.' key (for decimals or digit grouping).
	KeyCodeNumpadComma               KeyCode = 159 // Numeric keypad ',' key (for decimals or digit grouping).
	KeyCodeNumpadEnter               KeyCode = 160 // Numeric keypad Enter key.
	KeyCodeNumpadEquals              KeyCode = 161 // Numeric keypad '=' key.
	KeyCodeNumpadLeftParen           KeyCode = 162 // Numeric keypad '(' key.
	KeyCodeNumpadRightParen          KeyCode = 163 // Numeric keypad ')' key.
	KeyCodeVolumeMute                KeyCode = 164 // Volume Mute key.
	KeyCodeInfo                      KeyCode = 165 // Info key.
	KeyCodeChannelUp                 KeyCode = 166 // Channel up key.
	KeyCodeChannelDown               KeyCode = 167 // Channel down key.
	KeyCodeZoomIn                    KeyCode = 168 // Zoom in key.
	KeyCodeZoomOut                   KeyCode = 169 // Zoom out key.
	KeyCodeTv                        KeyCode = 170 // TV key.
	KeyCodeWindow                    KeyCode = 171 // Window key.
	KeyCodeGuide                     KeyCode = 172 // Guide key.
	KeyCodeDvr                       KeyCode = 173 // DVR key.
	KeyCodeBookmark                  KeyCode = 174 // Bookmark key.
	KeyCodeCaptions                  KeyCode = 175 // Toggle captions key.
	KeyCodeSettings                  KeyCode = 176 // Settings key.
	KeyCodeTvPower                   KeyCode = 177 // TV power key.
	KeyCodeTvInput                   KeyCode = 178 // TV input key.
	KeyCodeStbPower                  KeyCode = 179 // Set-top-box power key.
	KeyCodeStbInput                  KeyCode = 180 // Set-top-box input key.
	KeyCodeAvrPower                  KeyCode = 181 // A/V Receiver power key.
	KeyCodeAvrInput                  KeyCode = 182 // A/V Receiver input key.
	KeyCodeProgRed                   KeyCode = 183 // Red "programmable" key.
	KeyCodeProgGreen                 KeyCode = 184 // Green "programmable" key.
	KeyCodeProgYellow                KeyCode = 185 // Yellow "programmable" key.
	KeyCodeProgBlue                  KeyCode = 186 // Blue "programmable" key.
	KeyCodeAppSwitch                 KeyCode = 187 // App switch key.
	KeyCodeButton1                   KeyCode = 188 // Generic Game Pad Button #1.
	KeyCodeButton2                   KeyCode = 189 // Generic Game Pad Button #2.
	KeyCodeButton3                   KeyCode = 190 // Generic Game Pad Button #3.
	KeyCodeButton4                   KeyCode = 191 // Generic Game Pad Button #4.
	KeyCodeButton5                   KeyCode = 192 // Generic Game Pad Button #5.
	KeyCodeButton6                   KeyCode = 193 // Generic Game Pad Button #6.
	KeyCodeButton7                   KeyCode = 194 // Generic Game Pad Button #7.
	KeyCodeButton8                   KeyCode = 195 // Generic Game Pad Button #8.
	KeyCodeButton9                   KeyCode = 196 // Generic Game Pad Button #9.
	KeyCodeButton10                  KeyCode = 197 // Generic Game Pad Button #10.
	KeyCodeButton11                  KeyCode = 198 // Generic Game Pad Button #11.
	KeyCodeButton12                  KeyCode = 199 // Generic Game Pad Button #12.
	KeyCodeButton13                  KeyCode = 200 // Generic Game Pad Button #13.
	KeyCodeButton14                  KeyCode = 201 // Generic Game Pad Button #14.
	KeyCodeButton15                  KeyCode = 202 // Generic Game Pad Button #15.
	KeyCodeButton16                  KeyCode = 203 // Generic Game Pad Button #16.
	KeyCodeLanguageSwitch            KeyCode = 204 // Language Switch key.
	KeyCodeMannerMode                KeyCode = 205 // Manner Mode key.
	KeyCode3DMode                    KeyCode = 206 // 3D Mode key.
	KeyCodeContacts                  KeyCode = 207 // Contacts special function key.
	KeyCodeCalendar                  KeyCode = 208 // Calendar special function key.
	KeyCodeMusic                     KeyCode = 209 // Music special function key.
	KeyCodeCalculator                KeyCode = 210 // Calculator special function key.
	KeyCodeZenkakuHankaku            KeyCode = 211 // Japanese full-width / half-width key.
	KeyCodeEisu                      KeyCode = 212 // Japanese alphanumeric key.
	KeyCodeMuhenkan                  KeyCode = 213 // Japanese non-conversion key.
	KeyCodeHenkan                    KeyCode = 214 // Japanese conversion key.
	KeyCodeKatakanaHiragana          KeyCode = 215 // Japanese katakana / hiragana key.
	KeyCodeYen                       KeyCode = 216 // Japanese Yen key.
	KeyCodeRo                        KeyCode = 217 // Japanese Ro key.
	KeyCodeKana                      KeyCode = 218 // Japanese kana key.
	KeyCodeAssist                    KeyCode = 219 // Assist key.
	KeyCodeBrightnessDown            KeyCode = 220 // Brightness Down key.
	KeyCodeBrightnessUp              KeyCode = 221 // Brightness Up key.
	KeyCodeMediaAudioTrack           KeyCode = 222 // Audio Track key.
	KeyCodeSleep                     KeyCode = 223 // Sleep key.
	KeyCodeWakeup                    KeyCode = 224 // Wakeup key
	KeyCodePairing                   KeyCode = 225 // Pairing key.
	KeyCodeMediaTopMenu              KeyCode = 226 // Media Top Menu key.
	KeyCode11                        KeyCode = 227 // '11' key.
	KeyCode12                        KeyCode = 228 // '12' key.
	KeyCodeLastChannel               KeyCode = 229 // Last Channel key.
	KeyCodeTvDataService             KeyCode = 230 // TV data service key.
	KeyCodeVoiceAssist               KeyCode = 231 // Voice Assist key.
	KeyCodeTvRadioService            KeyCode = 232 // Radio key.
	KeyCodeTvTeletext                KeyCode = 233 // Teletext key.
	KeyCodeTvNumberEntry             KeyCode = 234 // Number entry key.
	KeyCodeTvTerrestrialAnalog       KeyCode = 235 // Analog Terrestrial key.
	KeyCodeTvTerrestrialDigital      KeyCode = 236 // Digital Terrestrial key.
	KeyCodeTvSatellite               KeyCode = 237 // Satellite key.
	KeyCodeTvSatelliteBs             KeyCode = 238 // BS key.
	KeyCodeTvSatelliteCs             KeyCode = 239 // CS key.
	KeyCodeTvSatelliteService        KeyCode = 240 // BS/CS key.
	KeyCodeTvNetwork                 KeyCode = 241 // Toggle Network key.
	KeyCodeTvAntennaCable            KeyCode = 242 // Antenna/Cable key.
	KeyCodeTvInputHdmi1              KeyCode = 243 // HDMI #1 key.
	KeyCodeTvInputHdmi2              KeyCode = 244 // HDMI #2 key.
	KeyCodeTvInputHdmi3              KeyCode = 245 // HDMI #3 key.
	KeyCodeTvInputHdmi4              KeyCode = 246 // HDMI #4 key.
	KeyCodeTvInputComposite1         KeyCode = 247 // Composite #1 key.
	KeyCodeTvInputComposite2         KeyCode = 248 // Composite #2 key.
	KeyCodeTvInputComponent1         KeyCode = 249 // Component #1 key.
	KeyCodeTvInputComponent2         KeyCode = 250 // Component #2 key.
	KeyCodeTvInputVga1               KeyCode = 251 // VGA #1 key.
	KeyCodeTvAudioDescription        KeyCode = 252 // Audio description key.
	KeyCodeTvAudioDescriptionMixUp   KeyCode = 253 // Audio description mixing volume up key.
	KeyCodeTvAudioDescriptionMixDown KeyCode = 254 // Audio description mixing volume down key.
	KeyCodeTvZoomMode                KeyCode = 255 // Zoom mode key.
	KeyCodeTvContentsMenu            KeyCode = 256 // Contents menu key.
	KeyCodeTvMediaContextMenu        KeyCode = 257 // Media context menu key.
	KeyCodeTvTimerProgramming        KeyCode = 258 // Timer programming key.
	KeyCodeHelp                      KeyCode = 259 // Help key.
	KeyCodeNavigatePrevious          KeyCode = 260 // Navigate to previous key.
	KeyCodeNavigateNext              KeyCode = 261 // Navigate to next key.
	KeyCodeNavigateIn                KeyCode = 262 // Navigate in key.
	KeyCodeNavigateOut               KeyCode = 263 // Navigate out key.
	KeyCodeStemPrimary               KeyCode = 264 // Primary stem key for Wear
	KeyCodeStem1                     KeyCode = 265 // Generic stem key 1 for Wear
	KeyCodeStem2                     KeyCode = 266 // Generic stem key 2 for Wear
	KeyCodeStem3                     KeyCode = 267 // Generic stem key 3 for Wear
	KeyCodeDpadUpLeft                KeyCode = 268 // Directional Pad Up-Left
	KeyCodeDpadDownLeft              KeyCode = 269 // Directional Pad Down-Left
	KeyCodeDpadUpRight               KeyCode = 270 // Directional Pad Up-Right
	KeyCodeDpadDownRight             KeyCode = 271 // Directional Pad Down-Right
	KeyCodeMediaSkipForward          KeyCode = 272 // Skip forward media key.
	KeyCodeMediaSkipBackward         KeyCode = 273 // Skip backward media key.
	KeyCodeMediaStepForward          KeyCode = 274 // Step forward media key.
	KeyCodeMediaStepBackward         KeyCode = 275 // Step backward media key.
	KeyCodeSoftSleep                 KeyCode = 276 // put device to sleep unless a wakelock is held.
	KeyCodeCut                       KeyCode = 277 // Cut key.
	KeyCodeCopy                      KeyCode = 278 // Copy key.
	KeyCodePaste                     KeyCode = 279 // Paste key.
	KeyCodeSystemNavigationUp        KeyCode = 280 // Consumed by the system for navigation up
	KeyCodeSystemNavigationDown      KeyCode = 281 // Consumed by the system for navigation down
	KeyCodeSystemNavigationLeft      KeyCode = 282 // Consumed by the system for navigation left
	KeyCodeSystemNavigationRight     KeyCode = 283 // Consumed by the system for navigation right
	KeyCodeAllApps                   KeyCode = 284 // Show all apps
	KeyCodeRefresh                   KeyCode = 285 // Refresh key.
	KeyCodeThumbsUp                  KeyCode = 286 // Thumbs up key. Apps can use this to let user upvote content.
	KeyCodeThumbsDown                KeyCode = 287 // Thumbs down key. Apps can use this to let user downvote content.
	KeyCodeProfileSwitch             KeyCode = 288
	KeyCodeVideoApp1                 KeyCode = 289 // Video Application key #1.
	KeyCodeVideoApp2                 KeyCode = 290 // Video Application key #2.
	KeyCodeVideoApp3                 KeyCode = 291 // Video Application key #3.
	KeyCodeVideoApp4                 KeyCode = 292 // Video Application key #4.
	KeyCodeVideoApp5                 KeyCode = 293 // Video Application key #5.
	KeyCodeVideoApp6                 KeyCode = 294 // Video Application key #6.
	KeyCodeVideoApp7                 KeyCode = 295 // Video Application key #7.
	KeyCodeVideoApp8                 KeyCode = 296 // Video Application key #8.
	KeyCodeFeaturedApp1              KeyCode = 297 // Featured Application key #1.
	KeyCodeFeaturedApp2              KeyCode = 298 // Featured Application key #2.
	KeyCodeFeaturedApp3              KeyCode = 299 // Featured Application key #3.
	KeyCodeFeaturedApp4              KeyCode = 300 // Featured Application key #4.
	KeyCodeDemoApp1                  KeyCode = 301 // Demo Application key #1.
	KeyCodeDemoApp2                  KeyCode = 302 // Demo Application key #2.
	KeyCodeDemoApp3                  KeyCode = 303 // Demo Application key #3.
	KeyCodeDemoApp4                  KeyCode = 304 // Demo Application key #4.
	KeyCodeKeyboardBacklightDown     KeyCode = 305 // Keyboard backlight down
	KeyCodeKeyboardBacklightUp       KeyCode = 306 // Keyboard backlight up
	KeyCodeKeyboardBacklightToggle   KeyCode = 307 // Keyboard backlight toggle
	KeyCodeStylusButtonPrimary       KeyCode = 308 // The primary button on the barrel of a stylus.
	KeyCodeStylusButtonSecondary     KeyCode = 309 // The secondary button on the barrel of a stylus.
	KeyCodeStylusButtonTertiary      KeyCode = 310 // The tertiary button on the barrel of a stylus.
	KeyCodeStylusButtonTail          KeyCode = 311 // A button on the tail end of a stylus.
	KeyCodeRecentApps                KeyCode = 312 // To open recent apps view (a.k.a. Overview).
	KeyCodeMacro1                    KeyCode = 313 // A button whose usage can be customized by the user through the system.
	KeyCodeMacro2                    KeyCode = 314 // A button whose usage can be customized by the user through the system.
	KeyCodeMacro3                    KeyCode = 315 // A button whose usage can be customized by the user through the system.
	KeyCodeMacro4                    KeyCode = 316 // A button whose usage can be customized by the user through the system.
)

// keyCodeNames is indexed by key code value.
var keyCodeNames = [...]string{
	"KEYCODE_UNKNOWN",
	"KEYCODE_SOFT_LEFT",
	"KEYCODE_SOFT_RIGHT",
	"KEYCODE_HOME",
	"KEYCODE_BACK",
	"KEYCODE_CALL",
	"KEYCODE_ENDCALL",
	"KEYCODE_0",
	"KEYCODE_1",
	"KEYCODE_2",
	"KEYCODE_3",
	"KEYCODE_4",
	"KEYCODE_5",
	"KEYCODE_6",
	"KEYCODE_7",
	"KEYCODE_8",
	"KEYCODE_9",
	"KEYCODE_STAR",
	"KEYCODE_POUND",
	"KEYCODE_DPAD_UP",
	"KEYCODE_DPAD_DOWN",
	"KEYCODE_DPAD_LEFT",
	"KEYCODE_DPAD_RIGHT",
	"KEYCODE_DPAD_CENTER",
	"KEYCODE_VOLUME_UP",
	"KEYCODE_VOLUME_DOWN",
	"KEYCODE_POWER",
	"KEYCODE_CAMERA",
	"KEYCODE_CLEAR",
	"KEYCODE_A",
	"KEYCODE_B",
	"KEYCODE_C",
	"KEYCODE_D",
	"KEYCODE_E",
	"KEYCODE_F",
	"KEYCODE_G",
	"KEYCODE_H",
	"KEYCODE_I",
	"KEYCODE_J",
	"KEYCODE_K",
	"KEYCODE_L",
	"KEYCODE_M",
	"KEYCODE_N",
	"KEYCODE_O",
	"KEYCODE_P",
	"KEYCODE_Q",
	"KEYCODE_R",
	"KEYCODE_S",
	"KEYCODE_T",
	"KEYCODE_U",
	"KEYCODE_V",
	"KEYCODE_W",
	"KEYCODE_X",
	"KEYCODE_Y",
	"KEYCODE_Z",
	"KEYCODE_COMMA",
	"KEYCODE_PERIOD",
	"KEYCODE_ALT_LEFT",
	"KEYCODE_ALT_RIGHT",
	"KEYCODE_SHIFT_LEFT",
	"KEYCODE_SHIFT_RIGHT",
	"KEYCODE_TAB",
	"KEYCODE_SPACE",
	"KEYCODE_SYM",
	"KEYCODE_EXPLORER",
	"KEYCODE_ENVELOPE",
	"KEYCODE_ENTER",
	"KEYCODE_DEL",
	"KEYCODE_GRAVE",
	"KEYCODE_MINUS",
	"KEYCODE_EQUALS",
	"KEYCODE_LEFT_BRACKET",
	"KEYCODE_RIGHT_BRACKET",
	"KEYCODE_BACKSLASH",
	"KEYCODE_SEMICOLON",
	"KEYCODE_APOSTROPHE",
	"KEYCODE_SLASH",
	"KEYCODE_AT",
	"KEYCODE_NUM",
	"KEYCODE_HEADSETHOOK",
	"KEYCODE_FOCUS",
	"KEYCODE_PLUS",
	"KEYCODE_MENU",
	"KEYCODE_NOTIFICATION",
	"KEYCODE_SEARCH",
	"KEYCODE_MEDIA_PLAY_PAUSE",
	"KEYCODE_MEDIA_STOP",
	"KEYCODE_MEDIA_NEXT",
	"KEYCODE_MEDIA_PREVIOUS",
	"KEYCODE_MEDIA_REWIND",
	"KEYCODE_MEDIA_FAST_FORWARD",
	"KEYCODE_MUTE",
	"KEYCODE_PAGE_UP",
	"KEYCODE_PAGE_DOWN",
	"KEYCODE_PICTSYMBOLS",
	"KEYCODE_SWITCH_CHARSET",
	"KEYCODE_BUTTON_A",
	"KEYCODE_BUTTON_B",
	"KEYCODE_BUTTON_C",
	"KEYCODE_BUTTON_X",
	"KEYCODE_BUTTON_Y",
	"KEYCODE_BUTTON_Z",
	"KEYCODE_BUTTON_L1",
	"KEYCODE_BUTTON_R1",
	"KEYCODE_BUTTON_L2",
	"KEYCODE_BUTTON_R2",
	"KEYCODE_BUTTON_THUMBL",
	"KEYCODE_BUTTON_THUMBR",
	"KEYCODE_BUTTON_START",
	"KEYCODE_BUTTON_SELECT",
	"KEYCODE_BUTTON_MODE",
	"KEYCODE_ESCAPE",
	"KEYCODE_FORWARD_DEL",
	"KEYCODE_CTRL_LEFT",
	"KEYCODE_CTRL_RIGHT",
	"KEYCODE_CAPS_LOCK",
	"KEYCODE_SCROLL_LOCK",
	"KEYCODE_META_LEFT",
	"KEYCODE_META_RIGHT",
	"KEYCODE_FUNCTION",
	"KEYCODE_SYSRQ",
	"KEYCODE_BREAK",
	"KEYCODE_MOVE_HOME",
	"KEYCODE_MOVE_END",
	"KEYCODE_INSERT",
	"KEYCODE_FORWARD",
	"KEYCODE_MEDIA_PLAY",
	"KEYCODE_MEDIA_PAUSE",
	"KEYCODE_MEDIA_CLOSE",
	"KEYCODE_MEDIA_EJECT",
	"KEYCODE_MEDIA_RECORD",
	"KEYCODE_F1",
	"KEYCODE_F2",
	"KEYCODE_F3",
	"KEYCODE_F4",
	"KEYCODE_F5",
	"KEYCODE_F6",
	"KEYCODE_F7",
	"KEYCODE_F8",
	"KEYCODE_F9",
	"KEYCODE_F10",
	"KEYCODE_F11",
	"KEYCODE_F12",
	"KEYCODE_NUM_LOCK",
	"KEYCODE_NUMPAD_0",
	"KEYCODE_NUMPAD_1",
	"KEYCODE_NUMPAD_2",
	"KEYCODE_NUMPAD_3",
	"KEYCODE_NUMPAD_4",
	"KEYCODE_NUMPAD_5",
	"KEYCODE_NUMPAD_6",
	"KEYCODE_NUMPAD_7",
	"KEYCODE_NUMPAD_8",
	"KEYCODE_NUMPAD_9",
	"KEYCODE_NUMPAD_DIVIDE",
	"KEYCODE_NUMPAD_MULTIPLY",
	"KEYCODE_NUMPAD_SUBTRACT",
	"KEYCODE_NUMPAD_ADD",
	"KEYCODE_NUMPAD_DOT",
	"KEYCODE_NUMPAD_COMMA",
	"KEYCODE_NUMPAD_ENTER",
	"KEYCODE_NUMPAD_EQUALS",
	"KEYCODE_NUMPAD_LEFT_PAREN",
	"KEYCODE_NUMPAD_RIGHT_PAREN",
	"KEYCODE_VOLUME_MUTE",
	"KEYCODE_INFO",
	"KEYCODE_CHANNEL_UP",
	"KEYCODE_CHANNEL_DOWN",
	"KEYCODE_ZOOM_IN",
	"KEYCODE_ZOOM_OUT",
	"KEYCODE_TV",
	"KEYCODE_WINDOW",
	"KEYCODE_GUIDE",
	"KEYCODE_DVR",
	"KEYCODE_BOOKMARK",
	"KEYCODE_CAPTIONS",
	"KEYCODE_SETTINGS",
	"KEYCODE_TV_POWER",
	"KEYCODE_TV_INPUT",
	"KEYCODE_STB_POWER",
	"KEYCODE_STB_INPUT",
	"KEYCODE_AVR_POWER",
	"KEYCODE_AVR_INPUT",
	"KEYCODE_PROG_RED",
	"KEYCODE_PROG_GREEN",
	"KEYCODE_PROG_YELLOW",
	"KEYCODE_PROG_BLUE",
	"KEYCODE_APP_SWITCH",
	"KEYCODE_BUTTON_1",
	"KEYCODE_BUTTON_2",
	"KEYCODE_BUTTON_3",
	"KEYCODE_BUTTON_4",
	"KEYCODE_BUTTON_5",
	"KEYCODE_BUTTON_6",
	"KEYCODE_BUTTON_7",
	"KEYCODE_BUTTON_8",
	"KEYCODE_BUTTON_9",
	"KEYCODE_BUTTON_10",
	"KEYCODE_BUTTON_11",
	"KEYCODE_BUTTON_12",
	"KEYCODE_BUTTON_13",
	"KEYCODE_BUTTON_14",
	"KEYCODE_BUTTON_15",
	"KEYCODE_BUTTON_16",
	"KEYCODE_LANGUAGE_SWITCH",
	"KEYCODE_MANNER_MODE",
	"KEYCODE_3D_MODE",
	"KEYCODE_CONTACTS",
	"KEYCODE_CALENDAR",
	"KEYCODE_MUSIC",
	"KEYCODE_CALCULATOR",
	"KEYCODE_ZENKAKU_HANKAKU",
	"KEYCODE_EISU",
	"KEYCODE_MUHENKAN",
	"KEYCODE_HENKAN",
	"KEYCODE_KATAKANA_HIRAGANA",
	"KEYCODE_YEN",
	"KEYCODE_RO",
	"KEYCODE_KANA",
	"KEYCODE_ASSIST",
	"KEYCODE_BRIGHTNESS_DOWN",
	"KEYCODE_BRIGHTNESS_UP",
	"KEYCODE_MEDIA_AUDIO_TRACK",
	"KEYCODE_SLEEP",
	"KEYCODE_WAKEUP",
	"KEYCODE_PAIRING",
	"KEYCODE_MEDIA_TOP_MENU",
	"KEYCODE_11",
	"KEYCODE_12",
	"KEYCODE_LAST_CHANNEL",
	"KEYCODE_TV_DATA_SERVICE",
	"KEYCODE_VOICE_ASSIST",
	"KEYCODE_TV_RADIO_SERVICE",
	"KEYCODE_TV_TELETEXT",
	"KEYCODE_TV_NUMBER_ENTRY",
	"KEYCODE_TV_TERRESTRIAL_ANALOG",
	"KEYCODE_TV_TERRESTRIAL_DIGITAL",
	"KEYCODE_TV_SATELLITE",
	"KEYCODE_TV_SATELLITE_BS",
	"KEYCODE_TV_SATELLITE_CS",
	"KEYCODE_TV_SATELLITE_SERVICE",
	"KEYCODE_TV_NETWORK",
	"KEYCODE_TV_ANTENNA_CABLE",
	"KEYCODE_TV_INPUT_HDMI_1",
	"KEYCODE_TV_INPUT_HDMI_2",
	"KEYCODE_TV_INPUT_HDMI_3",
	"KEYCODE_TV_INPUT_HDMI_4",
	"KEYCODE_TV_INPUT_COMPOSITE_1",
	"KEYCODE_TV_INPUT_COMPOSITE_2",
	"KEYCODE_TV_INPUT_COMPONENT_1",
	"KEYCODE_TV_INPUT_COMPONENT_2",
	"KEYCODE_TV_INPUT_VGA_1",
	"KEYCODE_TV_AUDIO_DESCRIPTION",
	"KEYCODE_TV_AUDIO_DESCRIPTION_MIX_UP",
	"KEYCODE_TV_AUDIO_DESCRIPTION_MIX_DOWN",
	"KEYCODE_TV_ZOOM_MODE",
	"KEYCODE_TV_CONTENTS_MENU",
	"KEYCODE_TV_MEDIA_CONTEXT_MENU",
	"KEYCODE_TV_TIMER_PROGRAMMING",
	"KEYCODE_HELP",
	"KEYCODE_NAVIGATE_PREVIOUS",
	"KEYCODE_NAVIGATE_NEXT",
	"KEYCODE_NAVIGATE_IN",
	"KEYCODE_NAVIGATE_OUT",
	"KEYCODE_STEM_PRIMARY",
	"KEYCODE_STEM_1",
	"KEYCODE_STEM_2",
	"KEYCODE_STEM_3",
	"KEYCODE_DPAD_UP_LEFT",
	"KEYCODE_DPAD_DOWN_LEFT",
	"KEYCODE_DPAD_UP_RIGHT",
	"KEYCODE_DPAD_DOWN_RIGHT",
	"KEYCODE_MEDIA_SKIP_FORWARD",
	"KEYCODE_MEDIA_SKIP_BACKWARD",
	"KEYCODE_MEDIA_STEP_FORWARD",
	"KEYCODE_MEDIA_STEP_BACKWARD",
	"KEYCODE_SOFT_SLEEP",
	"KEYCODE_CUT",
	"KEYCODE_COPY",
	"KEYCODE_PASTE",
	"KEYCODE_SYSTEM_NAVIGATION_UP",
	"KEYCODE_SYSTEM_NAVIGATION_DOWN",
	"KEYCODE_SYSTEM_NAVIGATION_LEFT",
	"KEYCODE_SYSTEM_NAVIGATION_RIGHT",
	"KEYCODE_ALL_APPS",
	"KEYCODE_REFRESH",
	"KEYCODE_THUMBS_UP",
	"KEYCODE_THUMBS_DOWN",
	"KEYCODE_PROFILE_SWITCH",
	"KEYCODE_VIDEO_APP_1",
	"KEYCODE_VIDEO_APP_2",
	"KEYCODE_VIDEO_APP_3",
	"KEYCODE_VIDEO_APP_4",
	"KEYCODE_VIDEO_APP_5",
	"KEYCODE_VIDEO_APP_6",
	"KEYCODE_VIDEO_APP_7",
	"KEYCODE_VIDEO_APP_8",
	"KEYCODE_FEATURED_APP_1",
	"KEYCODE_FEATURED_APP_2",
	"KEYCODE_FEATURED_APP_3",
	"KEYCODE_FEATURED_APP_4",
	"KEYCODE_DEMO_APP_1",
	"KEYCODE_DEMO_APP_2",
	"KEYCODE_DEMO_APP_3",
	"KEYCODE_DEMO_APP_4",
	"KEYCODE_KEYBOARD_BACKLIGHT_DOWN",
	"KEYCODE_KEYBOARD_BACKLIGHT_UP",
	"KEYCODE_KEYBOARD_BACKLIGHT_TOGGLE",
	"KEYCODE_STYLUS_BUTTON_PRIMARY",
	"KEYCODE_STYLUS_BUTTON_SECONDARY",
	"KEYCODE_STYLUS_BUTTON_TERTIARY",
	"KEYCODE_STYLUS_BUTTON_TAIL",
	"KEYCODE_RECENT_APPS",
	"KEYCODE_MACRO_1",
	"KEYCODE_MACRO_2",
	"KEYCODE_MACRO_3",
	"KEYCODE_MACRO_4",
}

var keyCodesByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyCodeNames))
	for code, name := range keyCodeNames {
		m[name] = KeyCode(code)
	}
	return m
}()

// Int returns the integer value sent to "input keyevent".
func (k KeyCode) Int() uint32 {
	return uint32(k)
}

// String returns the KeyEvent constant name, e.g. KEYCODE_HOME.
// Values outside the known set are rendered as their number.
func (k KeyCode) String() string {
	if int(k) < len(keyCodeNames) {
		return keyCodeNames[k]
	}
	return strconv.FormatUint(uint64(k), 10)
}

// ParseKeyCode accepts a non-negative decimal key code value, or a KeyEvent
// name with or without the KEYCODE_ prefix (case-insensitive). Digits are
// always read as a value: "3" is KeyCodeHome, "KEYCODE_3" is KeyCode3.
func ParseKeyCode(s string) (KeyCode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if n, err := strconv.ParseUint(name, 10, 32); err == nil {
		return KeyCode(n), nil
	}
	if code, ok := keyCodesByName[name]; ok {
		return code, nil
	}
	if code, ok := keyCodesByName["KEYCODE_"+name]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown key code %q", s)
}
